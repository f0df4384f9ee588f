// Package policy decides, per operation, whether an acting principal
// may touch a given order or its files. Decisions are pure: no I/O,
// no side effects.
package policy

import (
	"github.com/LiamCoop/upload-prints/internal/core/domain"
)

// Action names an operation subject to an authorization decision
type Action string

const (
	ActionReadOrder         Action = "read_order"
	ActionUpdateOrderStatus Action = "update_order_status"
	ActionReserveUpload     Action = "reserve_upload"
	ActionConfirmUpload     Action = "confirm_upload"
	ActionDownloadFiles     Action = "download_files"
	ActionStorageDiagnostic Action = "storage_diagnostic"
)

// Authorize returns nil when the principal may perform action against
// the order's files of the given kind, domain.ErrForbidden otherwise.
// For actions without a file kind, pass domain.FileKindCustomer; for
// actions without an order (storage diagnostic), pass a nil order.
func Authorize(principal domain.Principal, action Action, order *domain.Order, kind domain.FileKind) error {
	switch action {
	case ActionStorageDiagnostic, ActionUpdateOrderStatus:
		if principal.IsStaff() {
			return nil
		}
		return domain.ErrForbidden

	case ActionReadOrder:
		if principal.IsStaff() || isOwner(principal, order) {
			return nil
		}
		return domain.ErrForbidden

	case ActionReserveUpload:
		// processed files only ever come from staff; customer slots
		// are reserved by the order's owner
		if kind == domain.FileKindProcessed {
			if principal.IsStaff() {
				return nil
			}
			return domain.ErrForbidden
		}
		if isOwner(principal, order) {
			return nil
		}
		return domain.ErrForbidden

	case ActionConfirmUpload, ActionDownloadFiles:
		if kind == domain.FileKindProcessed {
			if principal.IsStaff() {
				return nil
			}
			return domain.ErrForbidden
		}
		if principal.IsStaff() || isOwner(principal, order) {
			return nil
		}
		return domain.ErrForbidden
	}

	return domain.ErrForbidden
}

func isOwner(principal domain.Principal, order *domain.Order) bool {
	return order != nil && principal.ID != "" && principal.ID == order.OwnerID
}
