package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/renoverde/recolhe-plus/client"
	"github.com/renoverde/recolhe-plus/i18n"
)

const usage = `recolhe - Recolhe+ command line client

Usage:
  recolhe login <email> <password>
  recolhe register <name> <email> <password>
  recolhe whoami
  recolhe pickups
  recolhe schedule <date> <time> <location> <type:qty> [type:qty ...]
  recolhe redeem <amountXOF> <description>
  recolhe chat
  recolhe map [role]
  recolhe logout

Environment:
  RECOLHE_API         backend base URL (default http://localhost:5000/api)
  RECOLHE_LANGUAGE    en, fr or pt (default en)
  RECOLHE_GEMINI_KEY  optional direct Gemini key for the chat fallback
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	store, err := client.NewFileStore("")
	if err != nil {
		fatal(err)
	}
	var opts []client.Option
	if base := os.Getenv("RECOLHE_API"); base != "" {
		opts = append(opts, client.WithBaseURL(base))
	}
	api := client.New(store, opts...)

	language := os.Getenv("RECOLHE_LANGUAGE")
	if language == "" {
		language = "en"
	}

	shell := client.NewShell(api)
	shell.SelectLanguage(language)

	switch os.Args[1] {
	case "login":
		requireArgs(4)
		if err := shell.Login(os.Args[2], os.Args[3]); err != nil {
			fatal(err)
		}
		printSession(shell)
	case "register":
		requireArgs(5)
		if err := shell.Register(os.Args[2], os.Args[3], os.Args[4], os.Args[4]); err != nil {
			fatal(err)
		}
		printSession(shell)
	case "whoami":
		printSession(shell)
	case "pickups":
		requireLogin(shell)
		shell.RefreshPickups()
		if shell.Offline() {
			fmt.Fprintln(os.Stderr, "warning: backend unreachable, showing demo data")
		}
		printJSON(shell.Pickups())
	case "schedule":
		requireLogin(shell)
		requireArgs(6)
		items, err := parseItems(os.Args[5:])
		if err != nil {
			fatal(err)
		}
		created, err := shell.SubmitPickup(client.PickupDraft{
			Items:    items,
			Date:     os.Args[2],
			Time:     os.Args[3],
			Location: os.Args[4],
		})
		if err != nil {
			fatal(err)
		}
		if shell.Offline() {
			fmt.Fprintln(os.Stderr, "warning: backend unreachable, pickup recorded locally")
		}
		printJSON(created)
	case "redeem":
		requireLogin(shell)
		requireArgs(4)
		amount, err := strconv.Atoi(os.Args[2])
		if err != nil {
			fatal(fmt.Errorf("invalid amount %q", os.Args[2]))
		}
		if err := shell.Redeem(amount, os.Args[3]); err != nil {
			fatal(err)
		}
		fmt.Printf("redeemed %d XOF, balance %d EcoCoins\n", amount, shell.Balance())
	case "chat":
		requireLogin(shell)
		runChat(api, language)
	case "map":
		role := client.RoleUser
		if len(os.Args) > 2 {
			role = os.Args[2]
		}
		printJSON(client.MarkersFor(role))
	case "logout":
		shell.Logout()
		fmt.Println("logged out")
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func runChat(api *client.Client, language string) {
	var direct client.DirectProvider
	if key := os.Getenv("RECOLHE_GEMINI_KEY"); key != "" {
		direct = client.NewGeminiProvider(key)
	}
	assistant := client.NewAssistant(api, direct, language)
	fmt.Println(i18n.T(language).Assistant.InitialMsg)

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || text == "exit" || text == "quit" {
			return
		}
		reply := assistant.Send(text)
		fmt.Println(reply.Text)
		fmt.Print("> ")
	}
}

func parseItems(args []string) ([]client.WasteItem, error) {
	var items []client.WasteItem
	for _, arg := range args {
		parts := strings.SplitN(arg, ":", 2)
		item := client.WasteItem{Type: parts[0], Quantity: 1}
		if len(parts) == 2 {
			qty, err := strconv.Atoi(parts[1])
			if err != nil || qty < 1 {
				return nil, fmt.Errorf("invalid quantity in %q", arg)
			}
			item.Quantity = qty
		}
		items = append(items, item)
	}
	return items, nil
}

func printSession(shell *client.Shell) {
	session := shell.Session()
	if session == nil {
		fatal(client.ErrNotAuthenticated)
	}
	printJSON(session.User)
	if !session.Real {
		fmt.Fprintln(os.Stderr, "warning: offline session, backend was unreachable")
	}
}

func requireLogin(shell *client.Shell) {
	if shell.Session() == nil {
		fatal(client.ErrNotAuthenticated)
	}
}

func requireArgs(n int) {
	if len(os.Args) < n {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
