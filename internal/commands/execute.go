package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add    func(AddArgs) (Result, error)
	Open   func(OpenArgs) (Result, error)
	Delete func(DeleteArgs) (Result, error)
	Goal   func(GoalArgs) (Result, error)
	Filter func(FilterArgs) (Result, error)
	Sort   func(SortArgs) (Result, error)
	Search func(SearchArgs) (Result, error)
	Import func(ImportArgs) (Result, error)
	Export func(ExportArgs) (Result, error)
	View   func(ViewArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Add(*cmd.Add)
	case TypeOpen:
		if handlers.Open == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Open(*cmd.Open)
	case TypeDelete:
		if handlers.Delete == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Delete(*cmd.Delete)
	case TypeGoal:
		if handlers.Goal == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Goal(*cmd.Goal)
	case TypeFilter:
		if handlers.Filter == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Filter(*cmd.Filter)
	case TypeSort:
		if handlers.Sort == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Sort(*cmd.Sort)
	case TypeSearch:
		if handlers.Search == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Search(*cmd.Search)
	case TypeImport:
		if handlers.Import == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Import(*cmd.Import)
	case TypeExport:
		if handlers.Export == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Export(*cmd.Export)
	case TypeView:
		if handlers.View == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.View(*cmd.View)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func missingHandler(typ Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", typ)}
}
