package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/bishnupur-union/society-backend/api/apicommon"
	"github.com/bishnupur-union/society-backend/db"
	qt "github.com/frankban/quicktest"
)

func TestRegisterMember(t *testing.T) {
	defer func() {
		if err := testDB.Reset(); err != nil {
			t.Error(err)
		}
	}()
	c := qt.New(t)
	// invalid email
	status, _ := doRequest(t, http.MethodPost, membersEndpoint, "", mustMarshal(&apicommon.MemberInfo{
		Name:     testName,
		Email:    "not-an-email",
		Password: testPass,
	}))
	c.Assert(status, qt.Equals, http.StatusBadRequest)
	// short password
	status, _ = doRequest(t, http.MethodPost, membersEndpoint, "", mustMarshal(&apicommon.MemberInfo{
		Name:     testName,
		Email:    testEmail,
		Password: "short",
	}))
	c.Assert(status, qt.Equals, http.StatusBadRequest)
	// missing name
	status, _ = doRequest(t, http.MethodPost, membersEndpoint, "", mustMarshal(&apicommon.MemberInfo{
		Email:    testEmail,
		Password: testPass,
	}))
	c.Assert(status, qt.Equals, http.StatusBadRequest)
	// malformed phone number
	status, _ = doRequest(t, http.MethodPost, membersEndpoint, "", mustMarshal(&apicommon.MemberInfo{
		Name:     testName,
		Email:    testEmail,
		Password: testPass,
		Phone:    "not-a-phone",
	}))
	c.Assert(status, qt.Equals, http.StatusBadRequest)
	// valid registration
	memberID := registerTestMember(t, testName, testEmail, testPass)
	c.Assert(memberID, qt.Equals, uint64(1))
	// the stored password is a bcrypt hash, never the clear text
	member, err := testDB.MemberByEmail(testEmail)
	c.Assert(err, qt.IsNil)
	c.Assert(member.Password, qt.Not(qt.Equals), testPass)
	c.Assert(member.Role, qt.Equals, db.RegularRole)
	// a welcome email reaches the new member
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	mailBody, err := testMailService.FindEmail(ctx, testEmail)
	c.Assert(err, qt.IsNil)
	c.Assert(strings.Contains(mailBody, testName), qt.IsTrue)
	// duplicate email
	status, _ = doRequest(t, http.MethodPost, membersEndpoint, "", mustMarshal(&apicommon.MemberInfo{
		Name:     "Impostor",
		Email:    testEmail,
		Password: testPass,
	}))
	c.Assert(status, qt.Equals, http.StatusConflict)
}

func TestLogin(t *testing.T) {
	defer func() {
		if err := testDB.Reset(); err != nil {
			t.Error(err)
		}
	}()
	c := qt.New(t)
	registerTestMember(t, testName, testEmail, testPass)
	// unknown email and wrong password are both rejected with the same status
	status, _ := doRequest(t, http.MethodPost, authLoginEndpoint, "", mustMarshal(&apicommon.LoginRequest{
		Email:    "nobody@test.com",
		Password: testPass,
	}))
	c.Assert(status, qt.Equals, http.StatusUnauthorized)
	status, _ = doRequest(t, http.MethodPost, authLoginEndpoint, "", mustMarshal(&apicommon.LoginRequest{
		Email:    testEmail,
		Password: "wrong-password",
	}))
	c.Assert(status, qt.Equals, http.StatusUnauthorized)
	// a valid login returns a token with an expiry in the future
	status, body := doRequest(t, http.MethodPost, authLoginEndpoint, "", mustMarshal(&apicommon.LoginRequest{
		Email:    testEmail,
		Password: testPass,
	}))
	c.Assert(status, qt.Equals, http.StatusOK)
	login := &apicommon.LoginResponse{}
	c.Assert(json.Unmarshal(body, login), qt.IsNil)
	c.Assert(login.Token, qt.Not(qt.Equals), "")
	c.Assert(login.Expirity.After(time.Now()), qt.IsTrue)
}

func TestMemberInfoAndRefresh(t *testing.T) {
	defer func() {
		if err := testDB.Reset(); err != nil {
			t.Error(err)
		}
	}()
	c := qt.New(t)
	registerTestMember(t, testName, testEmail, testPass)
	token := loginTestMember(t, testEmail, testPass)
	// without a token the endpoint is unauthorized
	status, _ := doRequest(t, http.MethodGet, membersMeEndpoint, "", nil)
	c.Assert(status, qt.Equals, http.StatusUnauthorized)
	// a garbage token is also rejected
	status, _ = doRequest(t, http.MethodGet, membersMeEndpoint, "not-a-jwt", nil)
	c.Assert(status, qt.Equals, http.StatusUnauthorized)
	// with a valid token the member information is returned
	status, body := doRequest(t, http.MethodGet, membersMeEndpoint, token, nil)
	c.Assert(status, qt.Equals, http.StatusOK)
	member := &db.Member{}
	c.Assert(json.Unmarshal(body, member), qt.IsNil)
	c.Assert(member.Email, qt.Equals, testEmail)
	c.Assert(member.Phone, qt.Equals, testPhone)
	// the refreshed token is valid too
	status, body = doRequest(t, http.MethodPost, authRefreshTokenEndpoint, token, nil)
	c.Assert(status, qt.Equals, http.StatusOK)
	refreshed := &apicommon.LoginResponse{}
	c.Assert(json.Unmarshal(body, refreshed), qt.IsNil)
	status, _ = doRequest(t, http.MethodGet, membersMeEndpoint, refreshed.Token, nil)
	c.Assert(status, qt.Equals, http.StatusOK)
}
