package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// CommandHandler defines the signature for command handler functions.
type (
	CommandHandler   func(context.Context, *tgbotapi.Message)
	MiddlwareHandler func(context.Context, *tgbotapi.Message) bool
	CallbackHandler  func(context.Context, *tgbotapi.CallbackQuery)
)

type Endpoint struct {
	Middlewares []MiddlwareHandler
	Handler     CommandHandler
}

// CommandRouter maps commands to handlers.
type CommandRouter struct {
	handlers map[string]Endpoint
	commands []string
}

// NewCommandRouter creates a new CommandRouter.
func NewCommandRouter() *CommandRouter {
	return &CommandRouter{handlers: make(map[string]Endpoint)}
}

// register adds a command and its handler to the router.
func (r *CommandRouter) register(command string, handler CommandHandler, middlewares ...MiddlwareHandler) {
	r.handlers[command] = Endpoint{
		Handler:     handler,
		Middlewares: middlewares,
	}

	r.commands = append(r.commands, "/"+command)
}

// CallbackRouter maps callback-query data to handlers, by exact value or by
// prefix for parameterized callbacks such as platform selections.
type CallbackRouter struct {
	exact    map[string]CallbackHandler
	prefixes map[string]CallbackHandler
}

func NewCallbackRouter() *CallbackRouter {
	return &CallbackRouter{
		exact:    make(map[string]CallbackHandler),
		prefixes: make(map[string]CallbackHandler),
	}
}

func (r *CallbackRouter) register(data string, handler CallbackHandler) {
	r.exact[data] = handler
}

func (r *CallbackRouter) registerPrefix(prefix string, handler CallbackHandler) {
	r.prefixes[prefix] = handler
}

func (r *CallbackRouter) resolve(data string) (CallbackHandler, bool) {
	if handler, ok := r.exact[data]; ok {
		return handler, true
	}
	for prefix, handler := range r.prefixes {
		if strings.HasPrefix(data, prefix) {
			return handler, true
		}
	}
	return nil, false
}

func (b *TelegramBot) RegisterRoutes() {
	b.router = NewCommandRouter()
	b.router.register("start", b.Start)
	b.router.register("premium", b.Premium)
	b.router.register("admin", b.Admin, b.RequireAdmin)

	b.callbacks = NewCallbackRouter()
	b.callbacks.register("add_video", b.AddVideo)
	b.callbacks.register("cancel_upload", b.CancelUpload)
	b.callbacks.register("get_premium", b.GetPremium)
	b.callbacks.register("back_to_premium", b.BackToPremium)
	b.callbacks.registerPrefix(platformCallbackPrefix, b.SelectPlatform)
}
