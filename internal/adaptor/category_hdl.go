package adaptor

import (
	"context"
	"fmt"

	"restaurant-menu/internal/dto/request"
	"restaurant-menu/internal/usecase"
	"restaurant-menu/pkg/shell"
	"restaurant-menu/pkg/utils"

	"github.com/jedib0t/go-pretty/v6/table"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	service usecase.CategoryService
	log     *zap.Logger
}

func NewCategoryHandler(service usecase.CategoryService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		log:     log.With(zap.String("handler", "category")),
	}
}

// Categories handles: categories [--all]
func (h *CategoryHandler) Categories(ctx context.Context, req *shell.Request) error {
	fs := newFlags(req.Command)
	all := fs.Bool("all", false, "include inactive categories")
	if err := req.Parse(fs); err != nil {
		return err
	}

	categories, err := h.service.ListCategories(ctx, req.State.Session(), !*all)
	if err != nil {
		return err
	}

	rows := make([]table.Row, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, table.Row{c.ID, c.Name, utils.Deref(c.Description, "-"), yesNo(c.IsActive)})
	}
	utils.ResponseTable(req.Out, "Categories", table.Row{"ID", "Name", "Description", "Active"}, rows)
	return nil
}

// AddCategory handles: add-category <name> [--description ..]
func (h *CategoryHandler) AddCategory(ctx context.Context, req *shell.Request) error {
	fs := newFlags(req.Command)
	description := fs.String("description", "", "description")
	if err := req.Parse(fs); err != nil {
		return err
	}

	category, err := h.service.AddCategory(ctx, req.State.Session(), &request.CategoryRequest{
		Name:        fs.Arg(0),
		Description: utils.OptionalString(*description),
	})
	if err != nil {
		return err
	}

	utils.ResponseSuccess(req.Out, fmt.Sprintf("Category %q added with id %d.", category.Name, category.ID))
	return nil
}

// DeactivateCategory handles: deactivate-category <id>
func (h *CategoryHandler) DeactivateCategory(ctx context.Context, req *shell.Request) error {
	fs := newFlags(req.Command)
	if err := req.Parse(fs); err != nil {
		return err
	}
	id, err := parseIDArg(fs, 0, "id")
	if err != nil {
		return err
	}

	if err := h.service.DeactivateCategory(ctx, req.State.Session(), id); err != nil {
		return err
	}

	utils.ResponseSuccess(req.Out, fmt.Sprintf("Category %d deactivated.", id))
	return nil
}
