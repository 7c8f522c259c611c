package options

import "github.com/spf13/cobra"

// GetOptions
type GetOptions struct {
	Search string
	Sort   string
}

func AddGetArgs(cmd *cobra.Command, o *GetOptions) {
	cmd.Flags().StringVar(&o.Search, "search", "",
		"Filter documents by title, client, or folder.")
	cmd.Flags().StringVar(&o.Sort, "sort", "",
		"Sort documents by one of: title, client, category, date.")
}
