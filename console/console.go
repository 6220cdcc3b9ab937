package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"smartphones/services/agent"
)

const Welcome = "Welcome to the Smartphone Assistant! I can help you with smartphone features and comparisons."

type Chatter interface {
	Respond(ctx context.Context, input string) (string, error)
	Farewell(ctx context.Context) (string, error)
}

// Run reads user lines from in until an exit command or end of input and
// prints the assistant replies to out. Any error from the assistant ends
// the loop and is returned to the caller.
func Run(ctx context.Context, in io.Reader, out io.Writer, chat Chatter) error {
	fmt.Fprintln(out, Welcome)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "User: ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			fmt.Fprintln(out)
			return sayGoodbye(ctx, out, chat)
		}

		input := strings.TrimSpace(scanner.Text())
		if agent.IsExitCommand(input) {
			return sayGoodbye(ctx, out, chat)
		}
		if input == "" {
			continue
		}

		reply, err := chat.Respond(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "System: %s\n", reply)
	}
}

func sayGoodbye(ctx context.Context, out io.Writer, chat Chatter) error {
	log.Printf("[INFO] Conversation ended by user")

	msg, err := chat.Farewell(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "System: %s\n", msg)
	return nil
}
