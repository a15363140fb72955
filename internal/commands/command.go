// Package commands parses palette input into typed commands and
// dispatches them to handlers. Parsing knows nothing about app state;
// the update loop supplies the handlers.
package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeOpen   Type = "open"
	TypeDelete Type = "delete"
	TypeGoal   Type = "goal"
	TypeFilter Type = "filter"
	TypeSort   Type = "sort"
	TypeSearch Type = "search"
	TypeImport Type = "import"
	TypeExport Type = "export"
	TypeView   Type = "view"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AddArgs carries a new task. Options ride along as key:value tokens,
// e.g. "/add morning run goal:3 prio:high cat:health".
type AddArgs struct {
	Name     string
	Goal     int
	Category string
	Priority string
}

type OpenArgs struct {
	Target string
}

type DeleteArgs struct {
	Target string
}

type GoalArgs struct {
	Target string
	Goal   int
}

// FilterArgs holds the criteria tokens: "/filter status:pending
// prio:high cat:health". A bare word is shorthand for status.
type FilterArgs struct {
	Status   string
	Priority string
	Category string
}

type SortArgs struct {
	Field     string
	Direction string
}

type SearchArgs struct {
	Query string
}

type ImportArgs struct {
	Path string
}

type ExportArgs struct {
	Path string
}

type ViewArgs struct {
	Name string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Open   *OpenArgs
	Delete *DeleteArgs
	Goal   *GoalArgs
	Filter *FilterArgs
	Sort   *SortArgs
	Search *SearchArgs
	Import *ImportArgs
	Export *ExportArgs
	View   *ViewArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeOpen:
		return parseTarget(input, TypeOpen, args)
	case TypeDelete:
		return parseTarget(input, TypeDelete, args)
	case TypeGoal:
		return parseGoal(input, args)
	case TypeFilter:
		return parseFilter(input, args)
	case TypeSort:
		return parseSort(input, args)
	case TypeSearch:
		return parseSearch(input, args)
	case TypeImport:
		return parsePath(input, TypeImport, args)
	case TypeExport:
		return parsePath(input, TypeExport, args)
	case TypeView:
		return parseView(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	add := AddArgs{}
	words := make([]string, 0, len(args))
	for _, arg := range args {
		key, value, found := strings.Cut(arg, ":")
		if !found {
			words = append(words, arg)
			continue
		}
		switch strings.ToLower(key) {
		case "goal":
			goal, err := strconv.Atoi(value)
			if err != nil || goal <= 0 {
				return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("goal must be a positive number, got %q", value)}
			}
			add.Goal = goal
		case "cat", "category":
			add.Category = value
		case "prio", "priority":
			add.Priority = strings.ToLower(value)
		default:
			words = append(words, arg)
		}
	}
	add.Name = strings.TrimSpace(strings.Join(words, " "))
	if add.Name == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a task name"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &add}, nil
}

func parseTarget(raw string, typ Type, args []string) (Command, error) {
	target := strings.TrimSpace(strings.Join(args, " "))
	if target == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a task name or id", typ)}
	}
	cmd := Command{Type: typ, Raw: raw}
	switch typ {
	case TypeOpen:
		cmd.Open = &OpenArgs{Target: target}
	case TypeDelete:
		cmd.Delete = &DeleteArgs{Target: target}
	}
	return cmd, nil
}

func parseGoal(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "goal requires a task and a number"}
	}
	goal, err := strconv.Atoi(args[len(args)-1])
	if err != nil || goal <= 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("goal must be a positive number, got %q", args[len(args)-1])}
	}
	target := strings.TrimSpace(strings.Join(args[:len(args)-1], " "))
	return Command{Type: TypeGoal, Raw: raw, Goal: &GoalArgs{Target: target, Goal: goal}}, nil
}

func parseFilter(raw string, args []string) (Command, error) {
	filter := FilterArgs{}
	for _, arg := range args {
		key, value, found := strings.Cut(arg, ":")
		if !found {
			filter.Status = strings.ToLower(arg)
			continue
		}
		switch strings.ToLower(key) {
		case "status":
			filter.Status = strings.ToLower(value)
		case "prio", "priority":
			filter.Priority = strings.ToLower(value)
		case "cat", "category":
			filter.Category = value
		default:
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown filter key: %s", key)}
		}
	}
	return Command{Type: TypeFilter, Raw: raw, Filter: &filter}, nil
}

func parseSort(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "sort requires a field"}
	}
	sort := SortArgs{Field: args[0], Direction: "asc"}
	if len(args) > 1 {
		dir := strings.ToLower(args[1])
		if dir != "asc" && dir != "desc" {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("direction must be asc or desc, got %q", args[1])}
		}
		sort.Direction = dir
	}
	return Command{Type: TypeSort, Raw: raw, Sort: &sort}, nil
}

func parseSearch(raw string, args []string) (Command, error) {
	// An empty query is valid: it clears the search.
	return Command{Type: TypeSearch, Raw: raw, Search: &SearchArgs{Query: strings.TrimSpace(strings.Join(args, " "))}}, nil
}

func parsePath(raw string, typ Type, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a file path", typ)}
	}
	path := strings.TrimSpace(strings.Join(args, " "))
	cmd := Command{Type: typ, Raw: raw}
	switch typ {
	case TypeImport:
		cmd.Import = &ImportArgs{Path: path}
	case TypeExport:
		cmd.Export = &ExportArgs{Path: path}
	}
	return cmd, nil
}

func parseView(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "view requires a name"}
	}
	return Command{Type: TypeView, Raw: raw, View: &ViewArgs{Name: strings.ToLower(args[0])}}, nil
}
