// notecli is a small smoke client for the notekeep API: every endpoint is
// reachable from the command line, which makes it handy for checking a
// deployment end to end.
//
// Usage:
//
//	notecli [-server host:port] [-timeout 10s] <command> [args]
//
// Commands:
//
//	ping
//	create <title> <content>
//	list
//	get <id>
//	update <id> <title|-> <content|->   ("-" leaves the field unchanged)
//	delete <id>
//	attach <id> <image-id> [image-id...]
//	upload <path>
//	download <image-id> <out-path>
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/tgusarov/notekeep/internal/adapter"
	"github.com/tgusarov/notekeep/internal/logger"
)

func main() {
	serverAddress := flag.String("server", "http://localhost:8000", "notekeep server address")
	timeout := flag.Duration("timeout", 10*time.Second, "request timeout")
	flag.Parse()

	log := logger.NewLogger("notecli")

	client, err := adapter.NewNotesClient(*serverAddress, *timeout, log)
	if err != nil {
		fail("invalid server address: %v", err)
	}

	args := flag.Args()
	if len(args) == 0 {
		fail("no command given; see `notecli -h`")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, client, args[0], args[1:]); err != nil {
		fail("%s: %v", args[0], err)
	}
}

func run(ctx context.Context, client adapter.NotesClient, command string, args []string) error {
	switch command {
	case "ping":
		message, err := client.Ping(ctx)
		if err != nil {
			return err
		}
		fmt.Println(message)
		return nil

	case "create":
		if len(args) != 2 {
			return fmt.Errorf("usage: create <title> <content>")
		}
		note, err := client.CreateNote(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		return printJSON(note)

	case "list":
		notes, err := client.ListNotes(ctx)
		if err != nil {
			return err
		}
		return printJSON(notes)

	case "get":
		if len(args) != 1 {
			return fmt.Errorf("usage: get <id>")
		}
		note, err := client.GetNote(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(note)

	case "update":
		if len(args) != 3 {
			return fmt.Errorf("usage: update <id> <title|-> <content|->")
		}
		note, err := client.UpdateNote(ctx, args[0], optional(args[1]), optional(args[2]))
		if err != nil {
			return err
		}
		return printJSON(note)

	case "delete":
		if len(args) != 1 {
			return fmt.Errorf("usage: delete <id>")
		}
		return client.DeleteNote(ctx, args[0])

	case "attach":
		if len(args) < 2 {
			return fmt.Errorf("usage: attach <id> <image-id> [image-id...]")
		}
		note, err := client.AppendImages(ctx, args[0], args[1:])
		if err != nil {
			return err
		}
		return printJSON(note)

	case "upload":
		if len(args) != 1 {
			return fmt.Errorf("usage: upload <path>")
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		filename := filepath.Base(args[0])
		contentType := mime.TypeByExtension(filepath.Ext(filename))
		imageID, err := client.UploadImage(ctx, filename, contentType, data)
		if err != nil {
			return err
		}
		fmt.Println(imageID)
		return nil

	case "download":
		if len(args) != 2 {
			return fmt.Errorf("usage: download <image-id> <out-path>")
		}
		image, err := client.DownloadImage(ctx, args[0])
		if err != nil {
			return err
		}
		return os.WriteFile(args[1], image.Data, 0o644)

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// optional maps the CLI's "-" placeholder to an untouched field.
func optional(arg string) *string {
	if arg == "-" {
		return nil
	}

	return &arg
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
