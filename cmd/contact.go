package cmd

import (
	"fmt"
	"io"

	"github.com/KharpukhaevV/folio/contact"
	"github.com/KharpukhaevV/folio/models"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var submission models.Submission

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Compose a message in your email client",
	Long: `Validates the name, email and message and opens a prefilled mailto:
link in the default email client. Nothing is sent by folio itself.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runContact(cfg.Contact.Recipient, submission, opener, cmd.OutOrStdout())
	},
}

func init() {
	contactCmd.Flags().StringVar(&submission.Name, "name", "", "your name")
	contactCmd.Flags().StringVar(&submission.Email, "email", "", "your email address")
	contactCmd.Flags().StringVar(&submission.Message, "message", "", "message text")
	rootCmd.AddCommand(contactCmd)
}

// runContact проверяет форму и передаёт письмо почтовому клиенту
func runContact(recipient string, sub models.Submission, o contact.Opener, w io.Writer) error {
	if verr := contact.Validate(sub); verr != nil {
		return fmt.Errorf("%s (%w)", contact.RequiredMessage, verr)
	}

	uri := contact.BuildMailto(recipient, sub)
	fmt.Fprintln(w, contact.OpeningMessage)
	if err := o.Open(uri); err != nil {
		if logger != nil {
			logger.Error("failed to open email client", zap.Error(err))
		}
		return err
	}
	return nil
}
