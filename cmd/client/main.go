package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-gate-keeper/internal/apiclient"
	"github.com/MKhiriev/go-gate-keeper/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("gate-keeper-client")

	address := flag.String("a", "localhost:8080", "server address")
	login := flag.String("login", "", "account login")
	password := flag.String("password", "", "account password")
	remember := flag.Bool("remember", false, "request an autologin token on login")
	key := flag.String("key", "", "activation key")
	newPassword := flag.String("new-password", "", "new account password")
	timeout := flag.Duration("timeout", 10*time.Second, "request timeout")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: client [flags] register|login|logout|session|activate|deny|change-password|delete|version")
		os.Exit(2)
	}

	client, err := apiclient.New(*address, *timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}

	ctx := context.Background()

	switch command := flag.Arg(0); command {
	case "register":
		user, err := client.Register(ctx, *login, *password)
		exitOnError(log, err)
		fmt.Printf("registered %s (%s)\n", user.Login, user.State)
		if user.ActivationKey != "" {
			fmt.Printf("activation key: %s\n", user.ActivationKey)
		}
	case "login":
		result, err := client.Login(ctx, *login, *password, *remember)
		exitOnError(log, err)
		fmt.Printf("logged in as user %d\n", result.UserID)
	case "logout":
		exitOnError(log, client.Logout(ctx))
		fmt.Println("logged out")
	case "session":
		info, err := client.Session(ctx)
		exitOnError(log, err)
		fmt.Printf("logged_in=%v user_id=%d flags=%v\n", info.LoggedIn, info.UserID, info.Flags)
	case "activate":
		exitOnError(log, client.Activate(ctx, *key))
		fmt.Println("account activated")
	case "deny":
		exitOnError(log, client.DenyActivation(ctx, *key))
		fmt.Println("activation denied, account removed")
	case "change-password":
		_, err := client.Login(ctx, *login, *password, false)
		exitOnError(log, err)
		exitOnError(log, client.ChangePassword(ctx, *newPassword))
		fmt.Println("password changed")
	case "delete":
		_, err := client.Login(ctx, *login, *password, false)
		exitOnError(log, err)
		exitOnError(log, client.DeleteAccount(ctx))
		fmt.Println("account deleted")
	case "version":
		version, err := client.Version(ctx)
		exitOnError(log, err)
		fmt.Println(version)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		os.Exit(2)
	}
}

func exitOnError(log *logger.Logger, err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
