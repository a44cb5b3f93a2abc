// Command addadmin promotes a member to the admin role. Privilege escalation
// is only possible through this out-of-band tool, never through the HTTP API.
package main

import (
	"github.com/bishnupur-union/society-backend/db"
	"github.com/bishnupur-union/society-backend/internal"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.vocdoni.io/dvote/log"
)

func main() {
	log.Init("info", "stdout", nil)
	flag.String("mongoURL", "", "The URL of the MongoDB server")
	flag.String("mongoDB", "society-backend", "The name of the MongoDB database")
	flag.StringP("email", "e", "", "email of the member to promote")
	flag.StringP("name", "n", "", "name of the member, used when creating it")
	flag.StringP("password", "p", "", "password of the member, used when creating it")
	flag.Parse()
	viper.SetEnvPrefix("SOCIETY")
	if err := viper.BindPFlags(flag.CommandLine); err != nil {
		panic(err)
	}
	viper.AutomaticEnv()

	email := viper.GetString("email")
	if !internal.ValidEmail(email) {
		log.Fatal("a valid email is required")
	}
	database, err := db.New(viper.GetString("mongoURL"), viper.GetString("mongoDB"))
	if err != nil {
		log.Fatalf("could not create the MongoDB database: %v", err)
	}
	defer database.Close()

	member, err := database.MemberByEmail(email)
	switch err {
	case nil:
		if err := database.SetMemberRole(member.ID, db.AdminRole); err != nil {
			log.Fatalf("could not promote the member: %v", err)
		}
		log.Infow("member promoted to admin", "id", member.ID, "email", email)
	case db.ErrNotFound:
		// create the member when it does not exist yet
		password := viper.GetString("password")
		if len(password) < 8 {
			log.Fatal("member not found, provide a password of at least 8 characters to create it")
		}
		hashed, err := internal.HashPassword(password)
		if err != nil {
			log.Fatalf("could not hash the password: %v", err)
		}
		memberID, err := database.SetMember(&db.Member{
			Name:     viper.GetString("name"),
			Email:    email,
			Password: hashed,
			Role:     db.AdminRole,
		})
		if err != nil {
			log.Fatalf("could not create the member: %v", err)
		}
		log.Infow("admin member created", "id", memberID, "email", email)
	default:
		log.Fatalf("could not look up the member: %v", err)
	}
}
