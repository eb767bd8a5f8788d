// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package account

import "context"

// Repository defines the data access contract for account data removal.
type Repository interface {

	// DeleteUserData removes every bookmark, favourite and progress row the
	// user owns, atomically, and reports the per-table counts.
	DeleteUserData(context context.Context, userID string) (DeletionReport, error)
}
