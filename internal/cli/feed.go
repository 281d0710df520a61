package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mohammed-danyal/brainrot-news/internal/apperr"
	"github.com/mohammed-danyal/brainrot-news/internal/domain"
	"github.com/mohammed-danyal/brainrot-news/internal/feedview"
	"github.com/mohammed-danyal/brainrot-news/pkg/config/env"
	"github.com/spf13/cobra"
)

const defaultAPIURL = "http://localhost:5000"

func newFeedCmd() *cobra.Command {
	var (
		apiURL   string
		category string
		more     int
		show     string
	)

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Show the feed the way the web client pages it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			// read after PersistentPreRunE so a value from .env applies
			if !cmd.Flags().Changed("api") {
				apiURL = env.String("NEWS_API_URL", defaultAPIURL)
			}
			selected, err := parseCategoryFlag(category)
			if err != nil {
				return err
			}
			if more < 0 {
				return apperr.NewValidation("more", "must not be negative")
			}
			var showID uuid.UUID
			if show != "" {
				if showID, err = uuid.Parse(show); err != nil {
					return apperr.NewValidationWrap("show", "invalid article id", err)
				}
			}

			fetcher, err := feedview.NewHTTPFetcher(apiURL)
			if err != nil {
				return err
			}

			m := feedview.NewModel()
			if err := m.Load(cmd.Context(), fetcher); err != nil {
				renderEmpty(out, m.EmptyState())
				return fmt.Errorf("load feed: %w", err)
			}
			m.SelectCategory(selected)
			for i := 0; i < more && m.HasMore(); i++ {
				m.LoadMore()
			}

			if show != "" {
				if !m.Select(showID) {
					return fmt.Errorf("article %s is not in the current feed", showID)
				}
				a, _ := m.Selected()
				renderDetail(out, a)
				m.Close()
				return nil
			}

			renderFeed(out, m)
			return nil
		},
	}

	cmd.Flags().StringVar(&apiURL, "api", defaultAPIURL, "news API base url, NEWS_API_URL when unset")
	cmd.Flags().StringVarP(&category, "category", "c", feedview.CategoryAll, "category filter")
	cmd.Flags().IntVar(&more, "more", 0, "number of extra pages to reveal")
	cmd.Flags().StringVar(&show, "show", "", "open the article with this id")
	return cmd
}

// parseCategoryFlag accepts ALL or a known category, case-insensitively.
func parseCategoryFlag(raw string) (string, error) {
	if strings.EqualFold(strings.TrimSpace(raw), feedview.CategoryAll) {
		return feedview.CategoryAll, nil
	}
	c, err := domain.ParseCategory(raw)
	if err != nil {
		return "", apperr.NewValidationWrap("category", "unknown category", err)
	}
	return string(c), nil
}
