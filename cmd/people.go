package cmd

import (
	"github.com/spf13/cobra"
)

// peopleCmd groups the person lookups
var peopleCmd = &cobra.Command{
	Use:     "people",
	Aliases: []string{"person"},
	Short:   "Look up people",
}

func init() {
	peopleCmd.AddCommand(&cobra.Command{
		Use:   "get ID",
		Short: "Show a person's details",
		Args:  cobra.ExactArgs(1),
		RunE:  runPersonGet,
	})
}

func runPersonGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0], "person ID")
	if err != nil {
		return err
	}
	r, err := newRenderer(cmd)
	if err != nil {
		return err
	}

	person, found, err := tmdbClient.People.FindPersonByID(cmd.Context(), id)
	if err != nil {
		return err
	}
	return renderDetail(r, person, found, writePerson)
}
