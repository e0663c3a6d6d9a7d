package main

import (
	"fmt"
	"os"
	"strings"

	"moodtunes/client"

	"github.com/spf13/cobra"
)

var serverURL string

func main() {
	rootCmd := &cobra.Command{
		Use:   "moodctl",
		Short: "Query the moodtunes discovery service",
	}

	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "service base URL")

	rootCmd.AddCommand(discoverCmd())
	rootCmd.AddCommand(statusCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func discoverCmd() *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "discover [mood text]",
		Short: "Find music videos matching a mood",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mood := strings.Join(args, " ")

			c := client.New(serverURL)
			response, err := c.Discover(cmd.Context(), mood, language)
			if err != nil {
				return err
			}

			if response.MoodAnalysis != nil {
				fmt.Printf("Mood: %s (confidence %.2f), searching %q\n\n",
					response.MoodAnalysis.Sentiment,
					response.MoodAnalysis.Score,
					response.MoodAnalysis.Keywords)
			}
			for i, video := range response.Data {
				fmt.Printf("%2d. %s - %s (%s views)\n", i+1, video.Title, video.ChannelTitle, video.ViewCount)
				fmt.Printf("    https://www.youtube.com/watch?v=%s\n", video.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "en", "language code (id or en)")
	return cmd
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether the service is configured",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := httpGet(cmd.Context(), serverURL+"/api/status")
			if err != nil {
				return err
			}
			fmt.Println(resp)
			return nil
		},
	}
}
