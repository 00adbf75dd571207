package menu

import (
	"net/http"

	"zaoan/models"
	"zaoan/utils"

	"github.com/julienschmidt/httprouter"
)

var itemIndex = func() map[string]models.CatalogItem {
	idx := make(map[string]models.CatalogItem, len(items))
	for _, it := range items {
		idx[it.ID] = it
	}
	return idx
}()

// Lookup resolves a catalog item by id.
func Lookup(id string) (models.CatalogItem, bool) {
	it, ok := itemIndex[id]
	return it, ok
}

// Categories returns the category list in display order.
func Categories() []models.Category {
	out := make([]models.Category, len(categories))
	copy(out, categories)
	return out
}

// Items returns the items of one category in display order, or every item
// when catID is "all".
func Items(catID string) []models.CatalogItem {
	var out []models.CatalogItem
	for _, it := range items {
		if catID == "all" || it.Category == catID {
			out = append(out, it)
		}
	}
	return out
}

// CommonNotes returns the predefined annotation texts.
func CommonNotes() []string {
	out := make([]string, len(commonNotes))
	copy(out, commonNotes)
	return out
}

// TableNumbers returns the selectable dine-in tables.
func TableNumbers() []string {
	out := make([]string, len(tableNumbers))
	copy(out, tableNumbers)
	return out
}

// GetCategories lists menu categories.
func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, Categories())
}

// GetCategoryItems lists the items of one category.
func GetCategoryItems(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	catID := ps.ByName("catid")
	found := catID == "all"
	for _, c := range categories {
		if c.ID == catID {
			found = true
			break
		}
	}
	if !found {
		http.Error(w, "Unknown category", http.StatusNotFound)
		return
	}
	list := Items(catID)
	if list == nil {
		list = []models.CatalogItem{}
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// GetItem fetches a single catalog item by id.
func GetItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	item, ok := Lookup(ps.ByName("itemid"))
	if !ok {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, item)
}

// GetCommonNotes lists the predefined annotations for the note dialog.
func GetCommonNotes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, CommonNotes())
}

// GetTableNumbers lists the selectable dine-in tables.
func GetTableNumbers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, TableNumbers())
}
