// portalctl is a small operator CLI for the admin API. It drives the same
// client package the portal frontend uses, so listing, creating and toggling
// email triggers from a terminal behaves exactly like the web UI.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/portal360/admin-api/internal/portal"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	client := portal.NewClient(envOr("PORTAL_API_URL", "http://localhost:3000"))
	if token := os.Getenv("PORTAL_TOKEN"); token != "" {
		client.SetToken(token)
	}
	if device := os.Getenv("PORTAL_DEVICE_ID"); device != "" {
		client.SetDeviceID(device)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "login":
		err = runLogin(ctx, client, os.Args[2:])
	case "list":
		err = runList(ctx, client)
	case "create":
		err = runCreate(ctx, client, os.Args[2:])
	case "toggle":
		err = runToggle(ctx, client, os.Args[2:])
	case "delete":
		err = runDelete(ctx, client, os.Args[2:])
	case "test-send":
		err = runTestSend(ctx, client, os.Args[2:])
	case "events":
		err = runEvents(ctx, client)
	case "timings":
		err = runTimings(ctx, client)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("portalctl %s: %v", os.Args[1], err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: portalctl <command> [flags]

commands:
  login      -email -password        sign in and print the token pair
  list                               list email triggers
  create     -name -event -timing [-message] [-inactive]
  toggle     -id -active=<bool>      activate or deactivate a trigger
  delete     -id                     delete a trigger
  test-send  -id -to                 send a trigger's template to an address
  events                             list the event catalog
  timings                            list the timing menu

environment: PORTAL_API_URL, PORTAL_TOKEN, PORTAL_DEVICE_ID`)
}

func runLogin(ctx context.Context, client *portal.Client, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(args)

	result, err := client.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("access_token=%s\nrefresh_token=%s\n", result.AccessToken, result.RefreshToken)
	return nil
}

func runList(ctx context.Context, client *portal.Client) error {
	triggers, err := client.ListTriggers(ctx)
	if err != nil {
		return err
	}
	events, err := client.ListEvents(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEVENT\tTIMING\tSTATUS")
	for _, row := range portal.Rows(triggers, events) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", row.ID, row.Name, row.EventName, row.TimingLabel, row.StatusBadge)
	}
	return tw.Flush()
}

func runCreate(ctx context.Context, client *portal.Client, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	name := fs.String("name", "", "trigger name")
	event := fs.String("event", "", "event id")
	timingCode := fs.String("timing", "immediate", "timing code, e.g. after_day_2")
	message := fs.String("message", "", "email body")
	inactive := fs.Bool("inactive", false, "create the trigger deactivated")
	_ = fs.Parse(args)

	draft := portal.NewDraft()
	draft.SetName(*name)
	draft.SetMessage(*message)
	draft.SelectEvent(*event)
	if err := draft.SelectTiming(*timingCode); err != nil {
		return err
	}
	if *inactive {
		draft.ToggleStatus(false)
	}
	input, err := draft.Build()
	if err != nil {
		return err
	}

	created, err := client.CreateTrigger(ctx, input)
	if err != nil {
		return err
	}
	fmt.Printf("created trigger %s\n", created.TriggerID)
	return nil
}

func runToggle(ctx context.Context, client *portal.Client, args []string) error {
	fs := flag.NewFlagSet("toggle", flag.ExitOnError)
	id := fs.String("id", "", "trigger id")
	active := fs.Bool("active", true, "desired state")
	_ = fs.Parse(args)

	t, err := client.ToggleTrigger(ctx, *id, *active)
	if err != nil {
		return err
	}
	fmt.Printf("trigger %s is now %s\n", t.TriggerID, t.Status)
	return nil
}

func runDelete(ctx context.Context, client *portal.Client, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.String("id", "", "trigger id")
	_ = fs.Parse(args)

	if err := client.DeleteTrigger(ctx, *id); err != nil {
		return err
	}
	fmt.Printf("deleted trigger %s\n", *id)
	return nil
}

func runTestSend(ctx context.Context, client *portal.Client, args []string) error {
	fs := flag.NewFlagSet("test-send", flag.ExitOnError)
	id := fs.String("id", "", "trigger id")
	to := fs.String("to", "", "recipient address")
	_ = fs.Parse(args)

	if err := client.SendTestEmail(ctx, *id, *to); err != nil {
		return err
	}
	fmt.Println("test email sent")
	return nil
}

func runEvents(ctx context.Context, client *portal.Client) error {
	events, err := client.ListEvents(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION")
	for _, e := range events {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.EventID, e.Name, e.Description)
	}
	return tw.Flush()
}

func runTimings(ctx context.Context, client *portal.Client) error {
	opts, err := client.TimingOptions(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tLABEL")
	for _, o := range opts {
		fmt.Fprintf(tw, "%s\t%s\n", o.Code, o.Label)
	}
	return tw.Flush()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
