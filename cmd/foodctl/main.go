package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/octobees/food-finder/internal/catalog"
	"github.com/octobees/food-finder/internal/config"
	"github.com/octobees/food-finder/internal/entity"
	"github.com/octobees/food-finder/internal/gemini"
	"github.com/octobees/food-finder/internal/service"
)

type generatorFactory func() (gemini.Generator, string, error)

func main() {
	if err := newRootCmd(os.Stdout, geminiFromEnv).Execute(); err != nil {
		os.Exit(1)
	}
}

func geminiFromEnv() (gemini.Generator, string, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, "", err
	}
	client, err := gemini.NewClient(nil, gemini.Config{
		APIKey:      cfg.Gemini.APIKey,
		Model:       cfg.Gemini.Model,
		BaseURL:     cfg.Gemini.BaseURL,
		Temperature: cfg.Gemini.Temperature,
		Timeout:     cfg.Gemini.Timeout,
	})
	if err != nil {
		return nil, "", err
	}
	return client, client.Model(), nil
}

type searchFlags struct {
	city, district                      string
	cuisine, budget, minRating, keyword string
}

func (f *searchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.city, "city", "", "city name, English or Chinese (required)")
	cmd.Flags().StringVar(&f.district, "district", "", "district name, English or Chinese (required)")
	cmd.Flags().StringVar(&f.cuisine, "cuisine", entity.CuisineAll, "cuisine filter")
	cmd.Flags().StringVar(&f.budget, "budget", entity.BudgetAny, "budget filter")
	cmd.Flags().StringVar(&f.minRating, "min-rating", entity.RatingAny, "minimum Google Maps rating")
	cmd.Flags().StringVar(&f.keyword, "keyword", "", "free-text special request")
	_ = cmd.MarkFlagRequired("city")
	_ = cmd.MarkFlagRequired("district")
}

func (f *searchFlags) resolve() (entity.Location, entity.SearchCriteria, error) {
	loc, err := service.ResolveLocation(entity.Location{City: f.city, District: f.district})
	if err != nil {
		return loc, entity.SearchCriteria{}, err
	}
	criteria, err := service.NormalizeCriteria(entity.SearchCriteria{
		Cuisine:   f.cuisine,
		Budget:    f.budget,
		MinRating: f.minRating,
		Keyword:   f.keyword,
	})
	return loc, criteria, err
}

func newRootCmd(out io.Writer, newGenerator generatorFactory) *cobra.Command {
	root := &cobra.Command{
		Use:          "foodctl",
		Short:        "Build food search prompts and run searches from the terminal",
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.SetErr(out)

	var promptOpts searchFlags
	prompt := &cobra.Command{
		Use:   "prompt",
		Short: "Print the prompt sent to the model for a location and filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, criteria, err := promptOpts.resolve()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), service.NewPromptBuilder("").Build(loc, criteria))
			return nil
		},
	}
	promptOpts.register(prompt)

	var searchOpts searchFlags
	search := &cobra.Command{
		Use:   "search",
		Short: "Run one grounded search and print the result with its map links",
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, criteria, err := searchOpts.resolve()
			if err != nil {
				return err
			}
			generator, model, err := newGenerator()
			if err != nil {
				return err
			}

			svc := service.NewSearchService(generator, nil, nil, nil)
			outcome, err := svc.Search(cmd.Context(), "", loc, criteria)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %s\n%s\n", outcome.Location.City, outcome.Location.District, outcome.Summary)
			if model != "" {
				fmt.Fprintf(w, "model: %s\n", model)
			}
			fmt.Fprintf(w, "\n%s\n", outcome.Result.Text)
			if len(outcome.Result.MapReferences) > 0 {
				fmt.Fprintln(w, "\n地圖參考來源:")
				for i, ref := range outcome.Result.MapReferences {
					fmt.Fprintf(w, "%d. %s\n   %s\n", i+1, ref.Title, ref.URI)
				}
			}
			return nil
		},
	}
	searchOpts.register(search)

	var locationsCity string
	locations := &cobra.Command{
		Use:   "locations",
		Short: "List supported cities, or the districts of one city",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if strings.TrimSpace(locationsCity) == "" {
				for _, city := range catalog.Cities() {
					fmt.Fprintf(w, "%s\t%s\t%d districts\n", city.Name, city.Label, len(city.Districts))
				}
				return nil
			}
			city, ok := catalog.FindCity(locationsCity)
			if !ok {
				return fmt.Errorf("unknown city %q", locationsCity)
			}
			for _, d := range city.Districts {
				fmt.Fprintf(w, "%s\t%s\t%s\n", d.Zip, d.Name, d.Label)
			}
			return nil
		},
	}
	locations.Flags().StringVar(&locationsCity, "city", "", "list the districts of this city")

	root.AddCommand(prompt, search, locations)
	return root
}
