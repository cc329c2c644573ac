// Command nexus is a terminal client for the Nexus Connect directory: sign
// in, search published profiles, reveal contacts, and check platform stats.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Hop-Syder/nexus-connect-t4/internal/apiclient"
	"github.com/Hop-Syder/nexus-connect-t4/internal/directory"
	"github.com/Hop-Syder/nexus-connect-t4/internal/identity"
	"github.com/Hop-Syder/nexus-connect-t4/internal/session"
	"github.com/Hop-Syder/nexus-connect-t4/internal/taxonomy"
)

var (
	apiBase string

	api     *apiclient.Client
	manager *session.Manager
)

func main() {
	root := &cobra.Command{
		Use:           "nexus",
		Short:         "Nexus Connect directory client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			if apiBase == "" {
				apiBase = os.Getenv("NEXUS_API_URL")
			}
			if apiBase == "" {
				apiBase = "http://localhost:8000"
			}
			api = apiclient.New(apiBase)

			store, err := session.NewFileStore(os.Getenv("NEXUS_CONFIG_DIR"))
			if err != nil {
				return fmt.Errorf("session store: %w", err)
			}
			provider := identity.NewFirebaseProvider(os.Getenv("FIREBASE_API_KEY"))
			manager = session.NewManager(provider, api, store)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&apiBase, "api", "", "backend base URL (defaults to NEXUS_API_URL)")

	root.AddCommand(
		loginCmd(),
		registerCmd(),
		logoutCmd(),
		whoamiCmd(),
		searchCmd(),
		contactRevealCmd(),
		statsCmd(),
		contactCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func loginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			res := manager.Login(cmd.Context(), email, password)
			if !res.Success {
				return fmt.Errorf("%s", res.Err.Message)
			}
			fmt.Printf("Signed in as %s\n", res.User.Email)
			if !res.User.HasProfile {
				fmt.Println("No profile published yet")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func registerCmd() *cobra.Command {
	var email, password, firstName, lastName string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			res := manager.Register(cmd.Context(), email, password, firstName, lastName)
			if !res.Success {
				return fmt.Errorf("%s", res.Err.Message)
			}
			fmt.Printf("Account created for %s\n", res.User.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager.Logout(cmd.Context())
			fmt.Println("Signed out")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session's user",
		RunE: func(cmd *cobra.Command, args []string) error {
			res := manager.Resume(cmd.Context())
			if !res.Success {
				return fmt.Errorf("%s", res.Err.Message)
			}
			u := res.User
			fmt.Printf("%s %s <%s>\n", u.FirstName, u.LastName, u.Email)
			fmt.Printf("Profile published: %v\n", u.HasProfile)
			return nil
		},
	}
}

func searchCmd() *cobra.Command {
	var (
		location    string
		city        string
		profileType string
		minRating   float64
	)
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the entrepreneur directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := directory.New(api)
			if len(args) == 1 {
				dir.SetSearch(args[0])
			}
			dir.SetLocation(location)
			dir.SetCity(city)
			dir.SetProfileType(profileType)
			dir.SetMinRating(minRating)

			if err := dir.Search(cmd.Context()); err != nil {
				return err
			}
			if dir.Empty() {
				fmt.Println("Aucun résultat trouvé")
				return nil
			}
			for _, e := range dir.Results() {
				name := strings.TrimSpace(e.FirstName + " " + e.LastName)
				if e.CompanyName != "" {
					name = e.CompanyName
				}
				fmt.Printf("%-36s  %-24s  %-12s  %s, %s  %.1f★\n",
					e.ID, name, e.ProfileType, taxonomy.CountryName(e.Location), e.City, e.Rating)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&location, "location", "all", "country code filter")
	cmd.Flags().StringVar(&city, "city", "", "city filter")
	cmd.Flags().StringVar(&profileType, "type", "all", "profile type filter")
	cmd.Flags().Float64Var(&minRating, "min-rating", 0, "minimum rating filter")
	return cmd
}

func contactRevealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reveal <entrepreneur-id>",
		Short: "Reveal one listing's contact details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := directory.New(api)
			waLink, err := dir.RevealWhatsApp(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			mailLink, err := dir.RevealEmail(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Println("WhatsApp:", waLink)
			fmt.Println("Email:   ", mailLink)
			return nil
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show platform counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := api.Stats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Users:    %d\n", stats.TotalUsers)
			fmt.Printf("Profiles: %d\n", stats.TotalProfiles)
			fmt.Printf("Views:    %d\n", stats.TotalViews)
			return nil
		},
	}
}

func contactCmd() *cobra.Command {
	var name, email, subject, message string
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a general inquiry to the platform",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := api.SubmitContact(cmd.Context(), apiclient.ContactMessage{
				Name:    name,
				Email:   email,
				Subject: subject,
				Message: message,
			})
			if err != nil {
				return err
			}
			fmt.Println("Message envoyé")
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "your name")
	cmd.Flags().StringVar(&email, "email", "", "your email")
	cmd.Flags().StringVar(&subject, "subject", "", "subject")
	cmd.Flags().StringVar(&message, "message", "", "message body")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("message")
	return cmd
}
