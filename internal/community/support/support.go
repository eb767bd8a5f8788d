// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

// Package support accepts reader support and feedback requests.
package support

// maxBodyLen bounds a support request body.
const maxBodyLen = 4000

// Request is a submitted support request.
type Request struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Body string `json:"body"`
}
