package agent

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/perfcompare"
	"github.com/etnz/perfcompare/docs"
	"github.com/etnz/perfcompare/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: Declarations(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user wants to understand how asset classes performed compared to each other:
			bitcoin, stocks, gold, bonds and real estate. Figures must come from the Analyst,
			never make them up. Use the Researcher for context and news.

			Devise a plan of questions to ask to each experts and come up with the best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher returns an expert grounded by Google Search.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is a market researcher, aware of the history of every asset class
		and of the latest news about them. Ask the Researcher whenever you need recent or
		grounding information explaining a figure.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a market researcher, you can search and find about anything related to
			bitcoin, stock indices, gold, bonds and real estate markets. You leverage Google Search to
			ground your assertions in a solid truth.
			You know which events moved each asset class on a given year.
				`}}},
		},
	}
}

// NewAnalyst returns the expert computing the performance figures of d.
func NewAnalyst(d *perfcompare.Dataset, opts renderer.Options) *Expert {
	lib := []Function{AssetSummary(d, opts), YearlyLeader(d), InsightsFunc(d, opts)}
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. It holds the yearly returns of every asset class and
		computes total return, CAGR, best and worst years, yearly leaders and insights.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: Declarations(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a performance analyst in charge of the yearly returns dataset.
				You know how to use the Tools to compute figures about each asset class.
				Always answer with figures computed by the Tools, and say over which years they were computed.

				Use the available tools to get
				  - the performance of an asset over a period
				  - the best performing asset of a year
				  - the headline insights
			` + must(docs.GetTopic("methodology"))}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func assetKeys() []string {
	keys := make([]string, 0, len(perfcompare.AssetKeys))
	for _, k := range perfcompare.AssetKeys {
		keys = append(keys, k.String())
	}
	return keys
}

// AssetSummary computes the KPI of an asset over a period.
func AssetSummary(d *perfcompare.Dataset, opts renderer.Options) *Func {
	const name = "asset_summary"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: `Computes the total return, CAGR, best and worst year of an asset class over a period.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"asset": {
						Type:        genai.TypeString,
						Enum:        assetKeys(),
						Description: "The asset class.",
					},
					"period": {
						Type:        genai.TypeString,
						Description: "The period, the whole dataset by default.\n\n" + must(docs.GetTopic("periods")),
					},
				},
				Required: []string{"asset"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown bullet with the asset performance over the resolved years.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			sasset, _ := args["asset"].(string)
			key, err := perfcompare.ParseAssetKey(sasset)
			if err != nil {
				return errorResponse(id, name, err)
			}
			if !d.Has(key) {
				return errorResponse(id, name, fmt.Errorf("asset %s is not in the dataset", key))
			}
			speriod, _ := args["period"].(string)
			r := perfcompare.ResolvePeriod(perfcompare.ParsePeriod(speriod), d.Years)
			for _, card := range renderer.KPICards(d, r, opts) {
				if card.Key == key {
					return outputResponse(id, name, fmt.Sprintf("Over %s:\n%s", r, renderer.KPIListMarkdown([]renderer.KPICard{card})))
				}
			}
			return errorResponse(id, name, fmt.Errorf("asset %s is not in the dataset", key))
		},
	}
}

// YearlyLeader tells the best performing asset of a year.
func YearlyLeader(d *perfcompare.Dataset) *Func {
	const name = "yearly_leader"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: `Returns the asset class with the highest return on a given year, and its return.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"year": {
						Type:        genai.TypeInteger,
						Description: "The calendar year, like 2017.",
					},
				},
				Required: []string{"year"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A sentence naming the leader and its return.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			year, err := parseYear(args["year"])
			if err != nil {
				return errorResponse(id, name, err)
			}
			i := d.IndexOf(year)
			if i == -1 || len(d.Assets) == 0 {
				return errorResponse(id, name, fmt.Errorf("year %d is not in the dataset, it covers %s", year, d.FullRange()))
			}
			leader, _ := d.Asset(d.YearlyLeader(i))
			return outputResponse(id, name, fmt.Sprintf("In %d the best performing asset was %s with %s.", year, leader.Name, renderer.FormatPercent(leader.Returns[i])))
		},
	}
}

// parseYear reads a year sent as a JSON number or a string.
func parseYear(v any) (int, error) {
	switch y := v.(type) {
	case float64:
		return int(y), nil
	case int:
		return y, nil
	case string:
		year, err := strconv.Atoi(strings.TrimSpace(y))
		if err != nil {
			return 0, fmt.Errorf("argument 'year' must be a year got %q", y)
		}
		return year, nil
	default:
		return 0, fmt.Errorf("argument 'year' is not a number as expected but %T", v)
	}
}

// InsightsFunc returns the headline insights of the distinguished asset.
func InsightsFunc(d *perfcompare.Dataset, opts renderer.Options) *Func {
	const name = "insights"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: `Returns the headline insights about ` + opts.Distinguished.Name() + ` over the whole dataset: years as the top asset, growth of $100, CAGR compared to the next best asset.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown bullet list of insights.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return outputResponse(id, name, renderer.InsightsMarkdown(renderer.NewInsights(d, opts)))
		},
	}
}
