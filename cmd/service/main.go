package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bishnupur-union/society-backend/api"
	"github.com/bishnupur-union/society-backend/db"
	"github.com/bishnupur-union/society-backend/notifications"
	"github.com/bishnupur-union/society-backend/notifications/mailtemplates"
	"github.com/bishnupur-union/society-backend/notifications/sendgrid"
	"github.com/bishnupur-union/society-backend/notifications/smtp"
	"github.com/bishnupur-union/society-backend/objectstorage"
	"github.com/bishnupur-union/society-backend/stripe"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.vocdoni.io/dvote/log"
)

func main() {
	log.Init("debug", "stdout", nil)
	// define flags
	flag.StringP("host", "h", "0.0.0.0", "listen address")
	flag.IntP("port", "p", 8080, "listen port")
	flag.StringP("secret", "s", "", "API secret")
	flag.String("serverURL", "http://localhost:8080", "The public URL of the server, used to build object URLs")
	flag.String("mongoURL", "", "The URL of the MongoDB server")
	flag.String("mongoDB", "society-backend", "The name of the MongoDB database")
	flag.String("contactAddress", "", "the inbox that receives the contact form submissions")
	flag.String("emailFromAddress", "", "email service from address")
	flag.String("emailFromName", "Bishnupur Union Society", "email service from name")
	flag.String("smtpServer", "", "SMTP server")
	flag.Int("smtpPort", 587, "SMTP port")
	flag.String("smtpUsername", "", "SMTP username")
	flag.String("smtpPassword", "", "SMTP password")
	flag.String("sendgridAPIKey", "", "SendGrid API key, used instead of SMTP when set")
	flag.String("s3Bucket", "", "S3 bucket for uploaded images, uses the database when empty")
	flag.String("s3Region", "", "S3 region")
	flag.String("s3Endpoint", "", "S3 endpoint, for S3-compatible services")
	flag.String("s3AccessKey", "", "S3 access key")
	flag.String("s3SecretKey", "", "S3 secret key")
	flag.String("stripeAPISecret", "", "Stripe API secret")
	flag.String("stripeWebhookSecret", "", "Stripe webhook signing secret")
	flag.String("stripeSuccessURL", "", "redirect URL after a completed donation")
	flag.String("stripeCancelURL", "", "redirect URL after a cancelled donation")
	flag.Int64("stripeMinAmount", 100, "minimum donation amount in the smallest currency unit")
	// parse flags
	flag.Parse()
	// initialize Viper
	viper.SetEnvPrefix("SOCIETY")
	if err := viper.BindPFlags(flag.CommandLine); err != nil {
		panic(err)
	}
	viper.AutomaticEnv()
	// read the configuration
	host := viper.GetString("host")
	port := viper.GetInt("port")
	secret := viper.GetString("secret")
	if secret == "" {
		log.Fatal("secret is required")
	}
	serverURL := viper.GetString("serverURL")
	mongoURL := viper.GetString("mongoURL")
	mongoDB := viper.GetString("mongoDB")
	contactAddress := viper.GetString("contactAddress")
	emailFromAddress := viper.GetString("emailFromAddress")
	emailFromName := viper.GetString("emailFromName")
	smtpServer := viper.GetString("smtpServer")
	smtpPort := viper.GetInt("smtpPort")
	smtpUsername := viper.GetString("smtpUsername")
	smtpPassword := viper.GetString("smtpPassword")
	sendgridAPIKey := viper.GetString("sendgridAPIKey")
	s3Bucket := viper.GetString("s3Bucket")
	stripeAPISecret := viper.GetString("stripeAPISecret")

	// initialize the MongoDB database
	database, err := db.New(mongoURL, mongoDB)
	if err != nil {
		log.Fatalf("could not create the MongoDB database: %v", err)
	}
	defer database.Close()
	// seed the default content on first run
	if err := database.EnsureDefaultContent(); err != nil {
		log.Fatalf("could not seed the default content: %v", err)
	}

	// create the email service based on the configuration
	var mailService notifications.NotificationService
	switch {
	case sendgridAPIKey != "":
		mailService = new(sendgrid.Email)
		if err := mailService.New(&sendgrid.Config{
			FromName:    emailFromName,
			FromAddress: emailFromAddress,
			APIKey:      sendgridAPIKey,
		}); err != nil {
			log.Fatalf("could not create the SendGrid email service: %v", err)
		}
		log.Infow("email service created", "service", "sendgrid")
	case smtpServer != "" && emailFromAddress != "":
		mailService = new(smtp.Email)
		if err := mailService.New(&smtp.Config{
			FromName:     emailFromName,
			FromAddress:  emailFromAddress,
			SMTPServer:   smtpServer,
			SMTPPort:     smtpPort,
			SMTPUsername: smtpUsername,
			SMTPPassword: smtpPassword,
		}); err != nil {
			log.Fatalf("could not create the SMTP email service: %v", err)
		}
		log.Infow("email service created", "service", "smtp", "server", smtpServer)
	default:
		log.Warn("no email service configured, contact relay and welcome emails disabled")
	}
	if mailService != nil {
		if err := mailtemplates.Load(); err != nil {
			log.Fatalf("could not load the email templates: %v", err)
		}
	}

	// create the object storage client, S3-backed when a bucket is set
	storageConfig := &objectstorage.Config{DB: database, ServerURL: serverURL}
	if s3Bucket != "" {
		storageConfig.S3 = &objectstorage.S3Config{
			Region:    viper.GetString("s3Region"),
			Endpoint:  viper.GetString("s3Endpoint"),
			AccessKey: viper.GetString("s3AccessKey"),
			SecretKey: viper.GetString("s3SecretKey"),
			Bucket:    s3Bucket,
		}
	}
	objectStorage, err := objectstorage.New(storageConfig)
	if err != nil {
		log.Fatalf("could not create the object storage client: %v", err)
	}

	// create the Stripe client if configured
	var stripeClient *stripe.Client
	if stripeAPISecret != "" {
		stripeClient = stripe.New(&stripe.Config{
			APIKey:        stripeAPISecret,
			WebhookSecret: viper.GetString("stripeWebhookSecret"),
			SuccessURL:    viper.GetString("stripeSuccessURL"),
			CancelURL:     viper.GetString("stripeCancelURL"),
			MinimumAmount: viper.GetInt64("stripeMinAmount"),
		})
		log.Infow("stripe client created")
	}

	// create the local API server
	api.New(&api.Config{
		Host:           host,
		Port:           port,
		Secret:         secret,
		DB:             database,
		MailService:    mailService,
		ContactAddress: contactAddress,
		ServerURL:      serverURL,
		ObjectStorage:  objectStorage,
		Stripe:         stripeClient,
	}).Start()
	// wait forever, as the server is running in a goroutine
	log.Infow("server started", "host", host, "port", port)
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
}
