package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	finance "github.com/spospordo/Local-Server-Site-Pusher-sub004"
	"github.com/spospordo/Local-Server-Site-Pusher-sub004/renderer"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert in charge of the conversation.
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

			Learn about the expert skills available through the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his net worth: his accounts, their balances,
			how they changed, and what happened during reconciliation of his statements.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.

			The user will assume you know his accounts, check the bookkeeper first to understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher creates a search-grounded expert for everything outside
// the store: institutions, products, market context.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert researcher,
		well aware of financial products and institutions and of the latest related news.
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert researcher: you can search and find anything related to
			financial institutions, companies, banks and products. You leverage Google Search to
			ground your assertions in a solid truth, and you know how to relate the latest news
			to the user's request.
				`}}},
		},
	}
}

// NewBookkeeper creates the expert in charge of the user's account store
// at path. Its tools are read-only.
func NewBookkeeper(path string) *Expert {
	lib := []Function{accountsTool(path), historyTool(path)}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the user's account store:
		the accounts, their balances and categories, the net worth, and the audit history of
		every balance update, merge and refusal.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's account store.
				You know how to use the Tools to extract relevant information about the user's
				accounts and net worth. You are part of a team of experts; yours is everything
				recorded in the store. They might ask you questions in approximative language,
				pardon it and figure out what they meant.

				Use the available tools to get
				  - the list of accounts with balances, categories and the net worth
				  - the audit history of updates, refusals, merges and deletions
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func accountsTool(path string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Accounts",
			Description: `Accounts lists every account in the user's store with its id, name,
			category, current balance and last update day, followed by the net worth.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of all accounts and the net worth.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			s, err := finance.LoadStore(path)
			if err != nil {
				return errorResponse(id, "Accounts", fmt.Errorf("could not load store: %w", err))
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Accounts",
				Response: map[string]any{
					"output": renderer.AccountsMarkdown(s.Accounts(), s.NetWorth()),
				},
			}
		},
	}
}

func historyTool(path string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "History",
			Description: `History lists the append-only audit trail of the store, oldest first:
			account creations, balance updates, refused stale balances, merges and deletions.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of every history entry.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			s, err := finance.LoadStore(path)
			if err != nil {
				return errorResponse(id, "History", fmt.Errorf("could not load store: %w", err))
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "History",
				Response: map[string]any{
					"output": renderer.HistoryMarkdown(s.History()),
				},
			}
		},
	}
}
