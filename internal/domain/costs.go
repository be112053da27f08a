package domain

import (
	"strings"
	"time"
)

// LineItem is a material or service row of a project's cost schedule. The
// extended cost is always quantity × unit cost, recomputed on every edit and
// never independently editable.
type LineItem struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Unit     string   `json:"unit"`
	Quantity float64  `json:"quantity"`
	UnitCost float64  `json:"unitCost"`
	Total    float64  `json:"total"`
	Months   []string `json:"months"`
	// Month is the legacy single-month field predating month sets. It is
	// read as a one-element set the first time months are toggled.
	Month string `json:"month,omitempty"`
}

// LineItemDraft carries user input for a new line item. Quantity and unit
// cost arrive as raw strings from the form and are coerced with defaults.
type LineItemDraft struct {
	Name     string
	Unit     string
	Quantity string
	UnitCost string
}

// LineItemPatch carries a partial edit; nil fields pass through unchanged.
type LineItemPatch struct {
	Name     *string
	Unit     *string
	Quantity *float64
	UnitCost *float64
}

// ExecutedEntry is one month's manually recorded actual spend per category.
type ExecutedEntry struct {
	Personnel float64 `json:"personnel"`
	Goods     float64 `json:"goods"`
	Services  float64 `json:"services"`
}

// ExecutedCosts maps month keys to recorded actuals. Absent cells read as 0.
type ExecutedCosts map[string]ExecutedEntry

// Set records one category's amount for a month, leaving the others intact.
func (e ExecutedCosts) Set(month string, category CostCategory, amount float64) error {
	entry := e[month]
	switch category {
	case CostPersonnel:
		entry.Personnel = amount
	case CostGoods:
		entry.Goods = amount
	case CostServices:
		entry.Services = amount
	default:
		return Validationf("categoría %q no válida", category)
	}
	e[month] = entry
	return nil
}

// CostSchedule is a project's programmed line items plus its executed table.
type CostSchedule struct {
	Materials []LineItem    `json:"materials"`
	Services  []LineItem    `json:"services"`
	Executed  ExecutedCosts `json:"executed"`
}

// NewCostSchedule returns an empty schedule ready for line items.
func NewCostSchedule() CostSchedule {
	return CostSchedule{
		Materials: []LineItem{},
		Services:  []LineItem{},
		Executed:  ExecutedCosts{},
	}
}

// Items returns the collection for the given kind.
func (c *CostSchedule) Items(kind LineItemKind) []LineItem {
	if kind == ItemService {
		return c.Services
	}
	return c.Materials
}

func (c *CostSchedule) setItems(kind LineItemKind, items []LineItem) {
	if kind == ItemService {
		c.Services = items
	} else {
		c.Materials = items
	}
}

// AddLineItem validates the draft and appends a new item with a fresh
// timestamp id. Quantity defaults to 1 when non-numeric, unit cost to 0; the
// extended cost is computed at creation and frozen until the next edit.
func (c *CostSchedule) AddLineItem(kind LineItemKind, draft LineItemDraft) (int64, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return 0, Validationf("el nombre del ítem es obligatorio")
	}
	qty := coerceNumber(draft.Quantity, 1)
	unitCost := coerceNumber(draft.UnitCost, 0)
	item := LineItem{
		ID:       c.nextItemID(),
		Name:     draft.Name,
		Unit:     draft.Unit,
		Quantity: qty,
		UnitCost: unitCost,
		Total:    qty * unitCost,
		Months:   []string{},
	}
	c.setItems(kind, append(c.Items(kind), item))
	return item.ID, nil
}

// EditLineItem applies the patch and recomputes the extended cost from the
// patched quantity/unit-cost pair.
func (c *CostSchedule) EditLineItem(kind LineItemKind, id int64, patch LineItemPatch) error {
	items := c.Items(kind)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		if patch.Name != nil {
			items[i].Name = *patch.Name
		}
		if patch.Unit != nil {
			items[i].Unit = *patch.Unit
		}
		if patch.Quantity != nil {
			items[i].Quantity = *patch.Quantity
		}
		if patch.UnitCost != nil {
			items[i].UnitCost = *patch.UnitCost
		}
		items[i].Total = items[i].Quantity * items[i].UnitCost
		return nil
	}
	return Validationf("ítem %d no existe", id)
}

// DeleteLineItem removes the item with the given id.
func (c *CostSchedule) DeleteLineItem(kind LineItemKind, id int64) error {
	items := c.Items(kind)
	for i := range items {
		if items[i].ID == id {
			c.setItems(kind, append(items[:i], items[i+1:]...))
			return nil
		}
	}
	return Validationf("ítem %d no existe", id)
}

// ToggleItemMonth adds or removes a month from the item's activation set. A
// legacy single-month value is folded into the set before toggling.
func (c *CostSchedule) ToggleItemMonth(kind LineItemKind, id int64, month string) error {
	items := c.Items(kind)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		items[i].upgradeLegacyMonth()
		for j, m := range items[i].Months {
			if m == month {
				items[i].Months = append(items[i].Months[:j], items[i].Months[j+1:]...)
				return nil
			}
		}
		items[i].Months = append(items[i].Months, month)
		return nil
	}
	return Validationf("ítem %d no existe", id)
}

// ActiveInMonth mirrors the personnel rule: an empty month set means always
// active, the legacy single-month field counting as a one-element set.
func (it *LineItem) ActiveInMonth(month string) bool {
	months := it.Months
	if len(months) == 0 && it.Month != "" {
		months = []string{it.Month}
	}
	if len(months) == 0 {
		return true
	}
	for _, m := range months {
		if m == month {
			return true
		}
	}
	return false
}

func (it *LineItem) upgradeLegacyMonth() {
	if len(it.Months) == 0 && it.Month != "" {
		it.Months = []string{it.Month}
	}
	it.Month = ""
}

// nextItemID derives a millisecond-timestamp id, bumping past collisions
// across both collections.
func (c *CostSchedule) nextItemID() int64 {
	n := time.Now().UnixMilli()
	for c.hasItem(n) {
		n++
	}
	return n
}

func (c *CostSchedule) hasItem(id int64) bool {
	for _, it := range c.Materials {
		if it.ID == id {
			return true
		}
	}
	for _, it := range c.Services {
		if it.ID == id {
			return true
		}
	}
	return false
}
