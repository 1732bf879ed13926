package adaptor

import (
	"context"
	"fmt"
	"strings"

	"restaurant-menu/internal/apperr"
	"restaurant-menu/internal/dto/request"
	"restaurant-menu/internal/dto/response"
	"restaurant-menu/internal/usecase"
	"restaurant-menu/pkg/shell"
	"restaurant-menu/pkg/utils"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var menuHeader = table.Row{"ID", "Name", "Category", "Price", "Available", "Prep (min)"}

type MenuHandler struct {
	service usecase.MenuService
	log     *zap.Logger
}

func NewMenuHandler(service usecase.MenuService, log *zap.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		log:     log.With(zap.String("handler", "menu")),
	}
}

// Menu handles: menu
func (h *MenuHandler) Menu(ctx context.Context, req *shell.Request) error {
	items, err := h.service.BrowseMenu(ctx, req.State.Session())
	if err != nil {
		return err
	}

	utils.ResponseTable(req.Out, "Menu", menuHeader, menuRows(items))
	return nil
}

// Item handles: item <id>
func (h *MenuHandler) Item(ctx context.Context, req *shell.Request) error {
	fs := newFlags(req.Command)
	if err := req.Parse(fs); err != nil {
		return err
	}
	id, err := parseIDArg(fs, 0, "id")
	if err != nil {
		return err
	}

	item, err := h.service.GetMenuItem(ctx, req.State.Session(), id)
	if err != nil {
		return err
	}

	renderItem(req, item)
	return nil
}

// Search handles: search <text...>
func (h *MenuHandler) Search(ctx context.Context, req *shell.Request) error {
	query := strings.Join(req.Args, " ")
	items, err := h.service.SearchMenu(ctx, req.State.Session(), query)
	if err != nil {
		return err
	}

	utils.ResponseTable(req.Out, fmt.Sprintf("Search: %s", query), menuHeader, menuRows(items))
	return nil
}

// Category handles: category <id>, listing its available items.
func (h *MenuHandler) Category(ctx context.Context, req *shell.Request) error {
	fs := newFlags(req.Command)
	if err := req.Parse(fs); err != nil {
		return err
	}
	id, err := parseIDArg(fs, 0, "category_id")
	if err != nil {
		return err
	}

	items, err := h.service.BrowseByCategory(ctx, req.State.Session(), id)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("Category %d", id)
	if len(items) > 0 && items[0].CategoryName != nil {
		title = *items[0].CategoryName
	}
	utils.ResponseTable(req.Out, title, menuHeader, menuRows(items))
	return nil
}

// Stats handles: stats
func (h *MenuHandler) Stats(ctx context.Context, req *shell.Request) error {
	stats, err := h.service.GetStatistics(ctx, req.State.Session())
	if err != nil {
		return err
	}

	utils.ResponseKeyValue(req.Out, "Menu statistics", [][2]string{
		{"Total items", fmt.Sprint(stats.TotalItems)},
		{"Available", fmt.Sprint(stats.AvailableItems)},
		{"Unavailable", fmt.Sprint(stats.UnavailableItems)},
		{"Active categories", fmt.Sprint(stats.ActiveCategories)},
		{"Average price", formatPrice(stats.AveragePrice)},
	})

	rows := make([]table.Row, 0, len(stats.CountPerCategory))
	for _, cc := range stats.CountPerCategory {
		rows = append(rows, table.Row{cc.CategoryName, cc.Count})
	}
	utils.ResponseTable(req.Out, "Items per category", table.Row{"Category", "Items"}, rows)
	return nil
}

func itemFlags(fs *pflag.FlagSet) {
	fs.String("name", "", "item name")
	fs.String("description", "", "description")
	fs.Float64("price", 0, "price")
	fs.Int64("category", 0, "category id")
	fs.Int("prep-time", 0, "preparation time in minutes")
	fs.String("ingredients", "", "ingredients")
	fs.String("allergens", "", "allergens")
	fs.Int("calories", 0, "calories")
}

// AddItem handles: add-item --name N --price P [--category ID] [--unavailable] ...
func (h *MenuHandler) AddItem(ctx context.Context, req *shell.Request) error {
	fs := newFlags(req.Command)
	itemFlags(fs)
	unavailable := fs.Bool("unavailable", false, "add as unavailable")
	if err := req.Parse(fs); err != nil {
		return err
	}
	if !fs.Changed("price") {
		return apperr.NewValidationError("price", "This field is required")
	}

	name, _ := fs.GetString("name")
	price, _ := fs.GetFloat64("price")
	available := !*unavailable

	item, err := h.service.AddMenuItem(ctx, req.State.Session(), &request.MenuItemRequest{
		Name:            name,
		Description:     changedString(fs, "description"),
		Price:           price,
		CategoryID:      changedInt64(fs, "category"),
		IsAvailable:     &available,
		PreparationTime: changedInt(fs, "prep-time"),
		Ingredients:     changedString(fs, "ingredients"),
		Allergens:       changedString(fs, "allergens"),
		Calories:        changedInt(fs, "calories"),
	})
	if err != nil {
		return err
	}

	utils.ResponseSuccess(req.Out, fmt.Sprintf("Menu item %q added with id %d.", item.Name, item.ID))
	return nil
}

// UpdateItem handles: update-item <id> [--name ..] [--price ..] [--category ID | --clear-category] [--available=BOOL] ...
func (h *MenuHandler) UpdateItem(ctx context.Context, req *shell.Request) error {
	fs := newFlags(req.Command)
	itemFlags(fs)
	fs.Bool("clear-category", false, "remove the category")
	fs.Bool("available", true, "availability")
	if err := req.Parse(fs); err != nil {
		return err
	}
	id, err := parseIDArg(fs, 0, "id")
	if err != nil {
		return err
	}

	clearCategory, _ := fs.GetBool("clear-category")
	item, err := h.service.UpdateMenuItem(ctx, req.State.Session(), id, &request.MenuItemUpdateRequest{
		Name:            changedString(fs, "name"),
		Description:     changedString(fs, "description"),
		Price:           changedFloat(fs, "price"),
		CategoryID:      changedInt64(fs, "category"),
		ClearCategory:   clearCategory,
		IsAvailable:     changedBool(fs, "available"),
		PreparationTime: changedInt(fs, "prep-time"),
		Ingredients:     changedString(fs, "ingredients"),
		Allergens:       changedString(fs, "allergens"),
		Calories:        changedInt(fs, "calories"),
	})
	if err != nil {
		return err
	}

	utils.ResponseSuccess(req.Out, fmt.Sprintf("Menu item %d updated.", item.ID))
	renderItem(req, item)
	return nil
}

// Toggle handles: toggle <id> [on|off]. Without a state it flips availability.
func (h *MenuHandler) Toggle(ctx context.Context, req *shell.Request) error {
	fs := newFlags(req.Command)
	if err := req.Parse(fs); err != nil {
		return err
	}
	id, err := parseIDArg(fs, 0, "id")
	if err != nil {
		return err
	}

	session := req.State.Session()
	var available bool
	switch strings.ToLower(fs.Arg(1)) {
	case "on", "yes", "true":
		available = true
	case "off", "no", "false":
		available = false
	case "":
		current, err := h.service.GetMenuItem(ctx, session, id)
		if err != nil {
			return err
		}
		available = !current.IsAvailable
	default:
		return apperr.NewValidationError("state", "Must be one of: on, off")
	}

	item, err := h.service.SetAvailability(ctx, session, id, available)
	if err != nil {
		return err
	}

	state := "unavailable"
	if item.IsAvailable {
		state = "available"
	}
	utils.ResponseSuccess(req.Out, fmt.Sprintf("%s is now %s.", item.Name, state))
	return nil
}

// DeleteItem handles: delete-item <id> [--yes]
func (h *MenuHandler) DeleteItem(ctx context.Context, req *shell.Request) error {
	fs := newFlags(req.Command)
	yes := fs.BoolP("yes", "y", false, "skip confirmation")
	if err := req.Parse(fs); err != nil {
		return err
	}
	id, err := parseIDArg(fs, 0, "id")
	if err != nil {
		return err
	}

	if !*yes {
		answer, err := req.Prompt.ReadLine(fmt.Sprintf("Delete menu item %d? [y/N] ", id))
		if err != nil {
			return err
		}
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			utils.ResponseInfo(req.Out, "Cancelled.")
			return nil
		}
	}

	if err := h.service.DeleteMenuItem(ctx, req.State.Session(), id); err != nil {
		return err
	}

	utils.ResponseSuccess(req.Out, fmt.Sprintf("Menu item %d deleted.", id))
	return nil
}

func renderItem(req *shell.Request, item *response.MenuItemResponse) {
	calories := "-"
	if item.Calories != nil {
		calories = fmt.Sprint(*item.Calories)
	}
	utils.ResponseKeyValue(req.Out, item.Name, [][2]string{
		{"ID", fmt.Sprint(item.ID)},
		{"Description", utils.Deref(item.Description, "-")},
		{"Category", utils.Deref(item.CategoryName, "Uncategorized")},
		{"Price", formatPrice(item.Price)},
		{"Available", yesNo(item.IsAvailable)},
		{"Preparation", fmt.Sprintf("%d min", item.PreparationTime)},
		{"Ingredients", utils.Deref(item.Ingredients, "-")},
		{"Allergens", utils.Deref(item.Allergens, "-")},
		{"Calories", calories},
		{"Updated", item.UpdatedAt.Format("2006-01-02 15:04")},
	})
}

func menuRows(items []response.MenuItemResponse) []table.Row {
	rows := make([]table.Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, table.Row{
			item.ID,
			item.Name,
			utils.Deref(item.CategoryName, "Uncategorized"),
			formatPrice(item.Price),
			yesNo(item.IsAvailable),
			item.PreparationTime,
		})
	}
	return rows
}
