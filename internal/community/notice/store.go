// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package notice

import "context"

// Repository defines the data access contract for notices.
type Repository interface {

	// ListActive returns active notices, newest first.
	ListActive(context context.Context) ([]Notice, error)
}
