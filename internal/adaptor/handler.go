package adaptor

import (
	"fmt"

	"restaurant-menu/internal/apperr"
	"restaurant-menu/internal/usecase"
	"restaurant-menu/pkg/utils"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Menu     *MenuHandler
	Category *CategoryHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Menu:     NewMenuHandler(service.Menu, log),
		Category: NewCategoryHandler(service.Category, log),
	}
}

func newFlags(command string) *pflag.FlagSet {
	return pflag.NewFlagSet(command, pflag.ContinueOnError)
}

// parseIDArg reads the positional id at index i.
func parseIDArg(fs *pflag.FlagSet, i int, field string) (int64, error) {
	if fs.NArg() <= i {
		return 0, apperr.NewValidationError(field, "This field is required")
	}
	id, err := utils.ParseID(fs.Arg(i))
	if err != nil {
		return 0, apperr.NewValidationError(field, "Must be a positive number")
	}
	return id, nil
}

// changedString returns the flag value when it was given, else nil.
func changedString(fs *pflag.FlagSet, name string) *string {
	if !fs.Changed(name) {
		return nil
	}
	v, _ := fs.GetString(name)
	return &v
}

func changedInt(fs *pflag.FlagSet, name string) *int {
	if !fs.Changed(name) {
		return nil
	}
	v, _ := fs.GetInt(name)
	return &v
}

func changedInt64(fs *pflag.FlagSet, name string) *int64 {
	if !fs.Changed(name) {
		return nil
	}
	v, _ := fs.GetInt64(name)
	return &v
}

func changedFloat(fs *pflag.FlagSet, name string) *float64 {
	if !fs.Changed(name) {
		return nil
	}
	v, _ := fs.GetFloat64(name)
	return &v
}

func changedBool(fs *pflag.FlagSet, name string) *bool {
	if !fs.Changed(name) {
		return nil
	}
	v, _ := fs.GetBool(name)
	return &v
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func formatPrice(price float64) string {
	return fmt.Sprintf("%.2f", price)
}
