package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SergeyParamoshkin/articles/internal/article"
	"github.com/SergeyParamoshkin/articles/internal/author"
	"github.com/SergeyParamoshkin/articles/internal/links"
	"github.com/SergeyParamoshkin/articles/internal/server"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the generated router documentation",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := server.NewRouter(server.Options{
			Articles: article.NewAPI(article.NewService(article.NewMemoryStore(), links.NewBuilder(""))),
			Authors:  author.NewAPI(author.NewService(author.NewMemoryStore())),
		})

		_, err := fmt.Fprintln(cmd.OutOrStdout(), server.RoutesDoc(r))

		return err
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
