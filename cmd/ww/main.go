// wellwish CLI - drafts holiday greetings for your contacts.
package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/wellwish/wellwish/internal/analysis"
	"github.com/wellwish/wellwish/internal/config"
	"github.com/wellwish/wellwish/internal/core"
	"github.com/wellwish/wellwish/internal/greeting"
	"github.com/wellwish/wellwish/internal/interaction"
	"github.com/wellwish/wellwish/internal/logging"
	"github.com/wellwish/wellwish/internal/relation"
	"github.com/wellwish/wellwish/internal/storage"
)

var (
	// Config
	cfgPath string
	cfg     *config.Config

	// Version
	version = "0.2.0"
)

func main() {
	// A .env next to the binary can hold WELLWISH_* overrides
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "ww",
		Short: "wellwish - holiday greeting drafter",
		Long: `wellwish drafts personalized Chinese New Year greetings for your
contacts from their relationship to you and your chat history with
them, then asks you to approve each draft before saving it.

Everything stays in a local SQLite database. Nothing is sent anywhere.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logging.SetLevel(logging.ParseLevel(cfg.Log.Level))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default $HOME/.wellwish/config.json)")

	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(statusCmd())
	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(contactCmd())
	rootCmd.AddCommand(chatCmd())
	rootCmd.AddCommand(greetCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openDB opens the database, refusing politely when uninitialized
func openDB() (*storage.DB, error) {
	dbPath := cfg.DatabasePath()
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("wellwish is not initialized, run 'ww init' first")
	}
	return storage.Open(storage.Config{Path: dbPath})
}

// initCmd creates the data directory and database
func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the wellwish database",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath := cfg.DatabasePath()
			if _, err := os.Stat(dbPath); err == nil {
				fmt.Println("⚠️  wellwish is already initialized.")
				fmt.Printf("   Data directory: %s\n", cfg.DataDir)
				return nil
			}

			db, err := storage.Open(storage.Config{Path: dbPath})
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.Migrate(); err != nil {
				return fmt.Errorf("%w: %v", core.ErrMigrationFailed, err)
			}

			fmt.Println("🎉 wellwish initialized!")
			fmt.Printf("   Database: %s\n", dbPath)
			fmt.Println()
			fmt.Println("   Add a contact:  ww contact add --name \"王老师\" --notes \"我的导师\"")
			fmt.Println("   Add a chat:     ww chat add \"王老师\" \"记得下周交论文\"")
			fmt.Println("   Draft greeting: ww greet \"王老师\"")
			return nil
		},
	}
}

// statusCmd shows database counts
func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show database status",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			contacts, err := storage.NewContactStore(db).Count()
			if err != nil {
				return err
			}
			var chats, greetings int
			db.Conn().QueryRow("SELECT COUNT(*) FROM chats").Scan(&chats)
			greetings, _ = storage.NewGreetingStore(db).Count()

			fmt.Println("📊 wellwish status")
			fmt.Println()
			fmt.Printf("   Data: %s\n", cfg.DataDir)
			fmt.Printf("   👥 Contacts: %d\n", contacts)
			fmt.Printf("   💬 Chat messages: %d\n", chats)
			fmt.Printf("   🧧 Saved greetings: %d\n", greetings)
			return nil
		},
	}
}

// versionCmd shows version
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show wellwish version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("wellwish %s\n", version)
		},
	}
}

// contactCmd handles contact operations
func contactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Contact operations",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Register a contact",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			phone, _ := cmd.Flags().GetString("phone")
			notes, _ := cmd.Flags().GetString("notes")
			relationFlag, _ := cmd.Flags().GetString("relation")

			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			contact := &core.Contact{
				Name:     name,
				Phone:    phone,
				Notes:    notes,
				Relation: core.RelationCategory(relationFlag),
			}
			// Classified exactly once, here; never re-derived on edit
			contact.Relation = relation.Classify(contact)

			if err := storage.NewContactStore(db).Create(contact); err != nil {
				return err
			}

			fmt.Printf("✅ Contact %q added, relation: %s\n", contact.Name, contact.Relation)
			return nil
		},
	}
	addCmd.Flags().String("name", "", "contact name (required)")
	addCmd.Flags().String("phone", "", "phone number")
	addCmd.Flags().String("notes", "", "free-text notes; used to infer the relation")
	addCmd.Flags().String("relation", "", "explicit relation (teacher, colleague, superior, friend, family, classmate, other)")
	addCmd.MarkFlagRequired("name")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			contacts, err := storage.NewContactStore(db).List()
			if err != nil {
				return err
			}

			fmt.Printf("👥 %d contact(s)\n", len(contacts))
			for i, c := range contacts {
				fmt.Printf("\n%d. %s\n", i+1, c.Name)
				fmt.Printf("   Relation: %s\n", c.Relation)
				fmt.Printf("   Phone: %s\n", orDash(c.Phone))
				fmt.Printf("   Notes: %s\n", orDash(c.Notes))
			}
			return nil
		},
	}

	cmd.AddCommand(addCmd)
	cmd.AddCommand(listCmd)
	return cmd
}

// chatCmd handles chat history operations
func chatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat history operations",
	}

	addCmd := &cobra.Command{
		Use:   "add [contact] [content]",
		Short: "Record a chat message for a contact",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			content := strings.Join(args[1:], " ")

			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			contact, err := findContact(db, name)
			if err != nil {
				return err
			}

			if _, err := storage.NewChatStore(db).Create(contact.ID, content); err != nil {
				return err
			}

			fmt.Println("✅ Chat message recorded")
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list [contact]",
		Short: "Show a contact's chat history, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			contact, err := findContact(db, args[0])
			if err != nil {
				return err
			}

			messages, err := storage.NewChatStore(db).ListByContact(contact.ID)
			if err != nil {
				return err
			}

			fmt.Printf("💬 %d message(s) with %s\n", len(messages), contact.Name)
			for i, m := range messages {
				fmt.Printf("\n%d. [%s] %s\n", i+1, m.Timestamp.Local().Format("2006-01-02 15:04"), m.Content)
			}
			return nil
		},
	}

	cmd.AddCommand(addCmd)
	cmd.AddCommand(listCmd)
	return cmd
}

// greetCmd runs the greeting pipeline for a contact
func greetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "greet [contact]",
		Short: "Draft a greeting and approve it interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			autoYes, _ := cmd.Flags().GetBool("yes")

			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			contact, err := findContact(db, args[0])
			if err != nil {
				return err
			}

			messages, err := storage.NewChatStore(db).ListByContact(contact.ID)
			if err != nil {
				return err
			}

			console := interaction.NewStdio()
			var prompter greeting.Prompter = console
			if autoYes {
				prompter = acceptFirst{out: console}
			} else if !interaction.Interactive() {
				return fmt.Errorf("stdin is not a terminal; use --yes for non-interactive runs")
			}

			analyzer := analysis.New(
				analysis.WithRecencyWindow(time.Duration(cfg.Greeting.RecentWindowDays) * 24 * time.Hour),
			)
			composer := greeting.NewComposer(rand.New(rand.NewSource(time.Now().UnixNano())))
			loop := greeting.NewApprovalLoop(analyzer, composer, prompter, storage.NewGreetingStore(db), cfg.Greeting.MaxAttempts)

			result, err := loop.Run(contact, messages)
			if err != nil {
				return err
			}

			if result.Accepted {
				console.Success("Greeting saved for %s (attempt %d)", contact.Name, result.Attempts)
				return nil
			}
			console.Failure("No draft accepted after %d attempts; nothing saved", result.Attempts)
			return nil
		},
	}
	cmd.Flags().Bool("yes", false, "accept the first draft without prompting")

	historyCmd := &cobra.Command{
		Use:   "history [contact]",
		Short: "Show a contact's saved greetings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			contact, err := findContact(db, args[0])
			if err != nil {
				return err
			}

			greetings, err := storage.NewGreetingStore(db).ListByContact(contact.ID)
			if err != nil {
				return err
			}

			fmt.Printf("🧧 %d saved greeting(s) for %s\n", len(greetings), contact.Name)
			for i, g := range greetings {
				fmt.Printf("\n%d. [%s] (%s)\n%s\n", i+1, g.CreatedAt.Local().Format("2006-01-02 15:04"), g.Status, g.Text)
			}
			return nil
		},
	}
	cmd.AddCommand(historyCmd)

	return cmd
}

// findContact resolves a name, turning the sentinel into a friendly message
func findContact(db *storage.DB, name string) (*core.Contact, error) {
	contact, err := storage.NewContactStore(db).GetByName(name)
	if errors.Is(err, core.ErrContactNotFound) {
		return nil, fmt.Errorf("no contact named %q, run 'ww contact list'", name)
	}
	if err != nil {
		return nil, err
	}
	return contact, nil
}

// acceptFirst is the --yes prompter: show the draft, accept it.
type acceptFirst struct {
	out *interaction.Console
}

func (a acceptFirst) YesNo(text, label string) (bool, error) {
	a.out.Info("Draft for %s:\n\n%s", label, text)
	return true, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
