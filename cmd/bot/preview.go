package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"affiliate_bot/internal/caption"
	"affiliate_bot/internal/config"
	"affiliate_bot/internal/domain"
)

var previewFlags struct {
	name     string
	price    string
	link     string
	category string
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the caption of every destination without publishing",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.ValidateContent(); err != nil {
			logger.Error("invalid config", "error", err)
			return err
		}

		catalog, err := caption.LoadEmbedded()
		if err != nil {
			return fmt.Errorf("load caption catalog: %w", err)
		}

		sub := domain.Submission{
			ProductName:  previewFlags.name,
			Price:        previewFlags.price,
			ReferralLink: previewFlags.link,
			Category:     previewFlags.category,
		}
		return writePreview(cmd.OutOrStdout(), caption.NewRenderer(catalog, cfg.Categories), cfg, sub)
	},
}

func init() {
	f := previewCmd.Flags()
	f.StringVar(&previewFlags.name, "name", "Red Sneakers", "product name")
	f.StringVar(&previewFlags.price, "price", "$59", "product price")
	f.StringVar(&previewFlags.link, "link", "https://shop.example/x?ref=ABC", "referral link")
	f.StringVar(&previewFlags.category, "category", "", "category key (defaults to the first configured)")
}

func writePreview(w io.Writer, renderer *caption.Renderer, cfg *config.Config, sub domain.Submission) error {
	if sub.Category == "" && len(cfg.Categories) > 0 {
		sub.Category = cfg.Categories[0].Key
	}

	for _, target := range cfg.Destinations {
		text, err := renderer.Render(sub.ProductName, sub.Price, sub.ReferralLink, sub.Category, target.Locale)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "=== %s (%s) -> %s\n%s\n\n", target.Title(), target.Locale, target.Address, text); err != nil {
			return err
		}
	}
	return nil
}
