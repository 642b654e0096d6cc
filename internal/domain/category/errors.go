package category

import (
	"fmt"
	"net/http"

	"churchcms/internal/pkg/apierr"
	"churchcms/internal/repository"
)

var (
	ErrCategoryNotFound = apierr.New(http.StatusNotFound, "Category not found", repository.ErrNotFound)
	ErrNameTaken        = apierr.New(http.StatusBadRequest, "Category name already exists", repository.ErrDuplicate)
	ErrOrdersNotArray   = apierr.New(http.StatusBadRequest, "categoryOrders must be an array", nil)
)

func inUse(count int64) error {
	return apierr.New(http.StatusBadRequest, fmt.Sprintf(
		"Cannot delete category. It is currently used by %d audio message(s). Please reassign or delete those messages first.",
		count), nil)
}
