package app

import (
	"quickhaul/internal/handlers/rest/account_get"
	"quickhaul/internal/handlers/rest/account_patch"
	"quickhaul/internal/handlers/rest/account_post"
	"quickhaul/internal/handlers/rest/deliveries_get"
	"quickhaul/internal/handlers/rest/delivery_advance_post"
	"quickhaul/internal/handlers/rest/delivery_cancel_post"
	"quickhaul/internal/handlers/rest/delivery_get"
	"quickhaul/internal/handlers/rest/delivery_post"
	"quickhaul/internal/handlers/rest/delivery_status_patch"
	"quickhaul/internal/handlers/rest/session_delete"
	"quickhaul/internal/handlers/rest/session_post"
	"quickhaul/internal/pkg/middlewares/auth"
	availabilityService "quickhaul/internal/service/availability"
	"quickhaul/pkg/background"
)

type Application struct {
	ServiceAccount    ServiceAccount
	ServiceDelivery   ServiceDelivery
	BackgroundWorkers *background.Worker
}

type ServiceAccount interface {
	account_post.Service
	account_get.Service
	account_patch.Service
	session_post.Service
	session_delete.Service
	auth.SessionResolver
}

type ServiceDelivery interface {
	delivery_post.Service
	delivery_status_patch.Service
	delivery_cancel_post.Service
	delivery_advance_post.Service
	delivery_get.Service
	deliveries_get.Service
}

type KafkaWorkerApp struct {
	AvailabilityService *availabilityService.Service
}
