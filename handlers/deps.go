package handlers

import (
	"github.com/sirupsen/logrus"

	"hackhub/admin-api/internal/storage"
	"hackhub/admin-api/internal/store"
)

// ApplicationHandler holds shared dependencies for handlers. The gateway and
// image store are interfaces so tests can swap in fakes.
type ApplicationHandler struct {
	Logger  *logrus.Logger
	Gateway store.Gateway
	Images  storage.ImageStore
}

// NewApplicationHandler creates an ApplicationHandler with the given dependencies.
func NewApplicationHandler(logger *logrus.Logger, gateway store.Gateway, images storage.ImageStore) *ApplicationHandler {
	return &ApplicationHandler{
		Logger:  logger,
		Gateway: gateway,
		Images:  images,
	}
}
