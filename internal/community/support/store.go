// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

package support

import "context"

// Repository defines the data access contract for support requests.
type Repository interface {

	// Insert stores a new support request.
	Insert(context context.Context, id, requestType, body string) error
}
