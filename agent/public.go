package agent

import (
	"context"
	"fmt"

	"github.com/etnz/pokerbank"
	"github.com/etnz/pokerbank/renderer"
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
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is hosting or playing a home poker cash game. He is here primarily to
			track buy-ins and cash-outs, and to find out who owes whom at the end of the night.

			Devise a plan of questions to ask each expert and come up with the best response
			to the user's request.

			The user will assume you already know his game's players and figures, check the
			game first to understand them.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewBanker returns the expert in charge of the game's bank. It answers from
// the save file at path.
func NewBanker(path string) *Expert {
	lib := []Function{
		summaryFunc(path),
		balancesFunc(path),
		settlementFunc(path),
	}

	return &Expert{
		Name: "Banker",
		Description: `This is the Banker. He keeps the bank of the poker game: every buy-in,
		every cash-out, each player's net balance and the transfers that settle the game.
		Ask the Banker anything about the game's money.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the banker of a home poker cash game.
				You know how to use the Tools to read the game's figures.
				You are part of a team of experts, yours is everything about the game's money.
				They might ask approximative questions, figure out what they meant.

				Use the available tools to get information about the game
				  - summary of buy-ins and cash-outs
				  - net balances per player
				  - settlement transfers
			`}}},
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

// render builds a Func that loads the game and renders one markdown report.
func render(path, name, description string, report func(*pokerbank.Session) string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted report.",
			},
		},
		Func: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{
				ID:       id,
				Name:     name,
				Response: map[string]any{},
			}
			s, err := pokerbank.LoadSession(path)
			if err != nil {
				fresp.Response["error"] = fmt.Sprintf("could not load game: %v", err)
				return fresp
			}
			fresp.Response["output"] = report(s)
			return fresp
		},
	}
}

func summaryFunc(path string) *Func {
	return render(path, "Summary",
		`Summary lists the game's players with their total buy-in and cash-out,
		and whether the table's totals match.`,
		renderer.SummaryMarkdown)
}

func balancesFunc(path string) *Func {
	return render(path, "Balances",
		`Balances lists each player's net result, winners first, with the biggest
		winner and the biggest payer called out.`,
		renderer.BalancesMarkdown)
}

func settlementFunc(path string) *Func {
	return render(path, "Settlement",
		`Settlement lists the transfers that square the game: who pays whom, and how much.`,
		renderer.TransfersMarkdown)
}
