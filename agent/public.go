package agent

import (
	"context"
	"strings"

	"github.com/etnz/qif"
	"github.com/etnz/qif/renderer"
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

			The user has loaded a Quicken Interchange Format (QIF) file: accounts with their
			transactions, a category hierarchy, classes and securities. They are here to
			understand what is in it.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			Devise a plan of questions to ask each expert and come up with the best response
			to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
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

// NewAnalyst returns the expert that answers questions about the loaded
// QIF file through function calls.
func NewAnalyst(q *qif.Qif) *Expert {
	lib := []Function{summaryFunc(q), treeFunc(q), transactionsFunc(q)}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. It has the user's QIF file loaded and can report
		its accounts, transactions, categories, classes and securities.
		Ask the Analyst whenever you need figures or listings from the file.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's QIF file.
				You know how to use the Tools to extract the relevant information:
				  - an overview of accounts with money totals
				  - the category trees
				  - transaction listings per account
				Other experts might ask you questions about the file, pardon their
				approximative language and figure out what they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
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

func outputResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func summaryFunc(q *qif.Qif) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Summary",
			Description: `Summary reports every account in the file with its type, record
			count and money totals, plus the declared categories, classes and securities.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"currency": {
						Type:        genai.TypeString,
						Description: "ISO 4217 currency code used to format the totals. USD is the default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown overview of the whole file.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			currency := "USD"
			if c, ok := args["currency"].(string); ok && c != "" {
				currency = c
			}
			out, err := renderer.SummaryMarkdown(q, currency)
			if err != nil {
				return errorResponse(id, "Summary", err)
			}
			return outputResponse(id, "Summary", out)
		},
	}
}

func treeFunc(q *qif.Qif) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "CategoryTree",
			Description: `CategoryTree renders the category hierarchies declared or used in the file.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "One rendered tree per root category.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			var trees []string
			for _, root := range q.Categories() {
				trees = append(trees, root.RenderTree())
			}
			return outputResponse(id, "CategoryTree", strings.Join(trees, "\n\n"))
		},
	}
}

func transactionsFunc(q *qif.Qif) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Transactions",
			Description: `Transactions lists the transactions of one account as markdown,
			dates, amounts, payees, categories and splits included.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"account": {
						Type:        genai.TypeString,
						Description: "The exact name of the account to list.",
					},
				},
				Required: []string{"account"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown listing of the account's transactions.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			name, _ := args["account"].(string)
			a := q.Account(name)
			if a == nil {
				var names []string
				for _, known := range q.Accounts() {
					names = append(names, known.Name)
				}
				return outputResponse(id, "Transactions",
					"unknown account "+name+"; known accounts: "+strings.Join(names, ", "))
			}
			var b strings.Builder
			for _, header := range a.Headers() {
				for _, rec := range a.Transactions(header) {
					switch t := rec.(type) {
					case *qif.Transaction:
						b.WriteString("- " + renderer.TransactionMarkdown(t, "USD"))
					case *qif.InvestmentTransaction:
						b.WriteString("- " + renderer.InvestmentMarkdown(t, "USD"))
					}
				}
			}
			return outputResponse(id, "Transactions", b.String())
		},
	}
}
