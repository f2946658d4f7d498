package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/xiaot623/chatshare/internal/client"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFDF5"))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#AFAFAF"))
	replyStyle = lipgloss.NewStyle().MarginLeft(2).Foreground(lipgloss.Color("#7D56F4"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
)

func newChatCmd() *cobra.Command {
	var (
		addr         string
		chatConfigID string
		sessionID    string
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with a shared config from the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c := client.NewClient(addr)

			if sessionID == "" {
				if chatConfigID == "" {
					return fmt.Errorf("either --config or --session is required")
				}
				cfg, err := c.GetChatConfig(ctx, chatConfigID)
				if err != nil {
					return err
				}
				fmt.Println(titleStyle.Render(cfg.Title))
				fmt.Println(infoStyle.Render(fmt.Sprintf("model %s, temperature %s", cfg.Model, cfg.Temperature)))

				session, err := c.CreateSession(ctx, chatConfigID)
				if err != nil {
					return err
				}
				sessionID = session.SessionID
			}

			fmt.Println(infoStyle.Render("Session: " + sessionID))
			fmt.Println(infoStyle.Render("Type a message and press Enter to send. /quit to exit."))

			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					return scanner.Err()
				}

				input := strings.TrimSpace(scanner.Text())
				if input == "" {
					continue
				}
				if input == "/quit" {
					fmt.Println("Bye!")
					return nil
				}

				reply, err := c.SendMessage(ctx, sessionID, input)
				if err != nil {
					fmt.Println(errorStyle.Render(err.Error()))
					continue
				}
				fmt.Println(replyStyle.Render(reply))
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "http://localhost:8080", "chatshare API address")
	cmd.Flags().StringVar(&chatConfigID, "config", "", "chat config to start a new session from")
	cmd.Flags().StringVar(&sessionID, "session", "", "existing session to continue")
	return cmd
}
