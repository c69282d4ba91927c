package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record <id>...",
	Short: "Show raw records with their bodies",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rd, err := sess.Reader()
		if err != nil {
			return err
		}

		records, err := rd.QueryByIDs(cmd.Context(), args)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			return fmt.Errorf("records not found")
		}

		type recordWithBody struct {
			ID        string
			Timestamp int64
			Address   string
			Tags      map[string]string
			Body      string
		}

		out := make([]recordWithBody, len(records))
		for i, v := range records {
			body, err := rd.GetData(cmd.Context(), v.ID)
			if err != nil {
				return err
			}

			tags := make(map[string]string, len(v.Tags))
			for _, t := range v.Tags {
				tags[t.Name] = t.Value
			}

			out[i] = recordWithBody{ID: v.ID, Timestamp: v.Timestamp, Address: v.Address, Tags: tags, Body: string(body)}
		}

		return output(out)
	},
}
