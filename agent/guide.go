package agent

import (
	"context"
	"fmt"

	"github.com/etnz/hyperbtc"
	"github.com/etnz/hyperbtc/docs"
	"github.com/etnz/hyperbtc/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newGuide creates the expert behind `hbc assist`, grounded on the embedded
// documentation and armed with the calculator itself.
func newGuide() *Expert {
	lib := []Function{EvaluateFunc, TableFunc}
	return &Expert{
		Name:      "Guide",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the guide of a bitcoin wealth percentile calculator.
				The user wonders where a net worth sits in a wealth distribution,
				and what holding that rank would cost in bitcoin if the whole
				distribution's wealth moved into it.

				Never do the arithmetic yourself: call the tools, they run the same
				engine as the calculator, and relay their numbers faithfully.

				Below are the calculator's documentation and its built-in datasets.

			` + must(docs.GetTopic("*")) + "\n" +
				renderer.SwitchMarkdown(hyperbtc.Global()) + "\n" +
				renderer.SwitchMarkdown(hyperbtc.US())}}},
		},
		Library: NewLibrary(lib),
	}
}

// EvaluateFunc lets the model run one scenario evaluation.
var EvaluateFunc = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Evaluate",
		Description: `Evaluate computes the bitcoin needed to keep a net worth's wealth
		percentile under hyperbitcoinization, with its percentile and supply shares.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"net_worth": {
					Type:        genai.TypeNumber,
					Description: "The net worth in US dollars, non negative.",
				},
				"dataset": {
					Type:        genai.TypeString,
					Description: "The wealth distribution to rank against: 'global' or 'us'. Global is the default.",
				},
			},
			Required: []string{"net_worth"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted scenario result.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		ds, err := parseDataset(args)
		if err != nil {
			return errResponse(id, "Evaluate", err)
		}
		arg, hasArg := args["net_worth"]
		v, ok := arg.(float64)
		if !hasArg || !ok {
			return errResponse(id, "Evaluate", fmt.Errorf("argument 'net_worth' is not a number as expected but %T", arg))
		}
		if v < 0 {
			return errResponse(id, "Evaluate", fmt.Errorf("net worth must not be negative, got %v", v))
		}
		r := hyperbtc.Evaluate(hyperbtc.M(v, "USD"), ds)
		return &genai.FunctionResponse{
			ID:   id,
			Name: "Evaluate",
			Response: map[string]any{
				"output": renderer.ResultMarkdown(r, renderer.ResultOptions{}),
			},
		}
	},
}

// TableFunc lets the model fetch the thresholds at every standard percentile.
var TableFunc = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Table",
		Description: `Table lists, for every standard percentile of a wealth distribution,
		the net worth threshold and the bitcoin needed to hold it.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"dataset": {
					Type:        genai.TypeString,
					Description: "The wealth distribution to list: 'global' or 'us'. Global is the default.",
				},
			},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted table of percentiles and thresholds.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		ds, err := parseDataset(args)
		if err != nil {
			return errResponse(id, "Table", err)
		}
		return &genai.FunctionResponse{
			ID:   id,
			Name: "Table",
			Response: map[string]any{
				"output": renderer.TableMarkdown(hyperbtc.NewTableReport(ds)),
			},
		}
	},
}

// parseDataset reads the optional 'dataset' argument, defaulting to global.
func parseDataset(args map[string]any) (*hyperbtc.Dataset, error) {
	arg, hasArg := args["dataset"]
	if !hasArg {
		return hyperbtc.Global(), nil
	}
	name, ok := arg.(string)
	if !ok {
		return nil, fmt.Errorf("argument 'dataset' is not a string as expected but %T", arg)
	}
	return hyperbtc.ParseDataset(name)
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
