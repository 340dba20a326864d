package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Library answers the function calls of a model.
type Library func(context.Context, *genai.FunctionCall) *genai.FunctionResponse

// Function is something a model can call.
type Function interface {
	Declaration() *genai.FunctionDeclaration
	Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

// NewLibrary dispatches calls to functions by declared name. The first
// function declaring a name gets its calls.
func NewLibrary[T Function](functions []T) Library {
	byName := make(map[string]T, len(functions))
	for _, f := range functions {
		name := f.Declaration().Name
		if _, exists := byName[name]; !exists {
			byName[name] = f
		}
	}
	return func(ctx context.Context, call *genai.FunctionCall) *genai.FunctionResponse {
		f, ok := byName[call.Name]
		if !ok {
			return errorResponse(call.ID, call.Name, fmt.Errorf("unknown function %s", call.Name))
		}
		return f.Call(ctx, call.ID, call.Args)
	}
}

// Declarations lists the declarations of functions, for a model tool.
func Declarations[T Function](functions []T) []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, len(functions))
	for i, f := range functions {
		decls[i] = f.Declaration()
	}
	return decls
}

// errorResponse reports err to the model, that can fix its call.
func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{"error": err.Error()}}
}

func outputResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{"output": output}}
}
