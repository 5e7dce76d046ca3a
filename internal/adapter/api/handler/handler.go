package handler

import (
	"mentorhub/internal/infrastructure/token"
	ws "mentorhub/internal/infrastructure/websocket"
	"mentorhub/internal/usecase"
)

var (
	authHandler        *AuthHandler
	profileHandler     *ProfileHandler
	wizardHandler      *WizardHandler
	adminHandler       *AdminHandler
	adminEventsHandler *AdminEventsHandler
	categoryHandler    *CategoryHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	profileUseCase *usecase.ProfileUseCase,
	wizardUseCase *usecase.WizardUseCase,
	userStore *usecase.UserManagementStore,
	categoryUseCase *usecase.CategoryUseCase,
	eventManager *ws.Manager,
	tokenManager *token.Manager,
) {
	authHandler = NewAuthHandler(authUseCase)
	profileHandler = NewProfileHandler(profileUseCase)
	wizardHandler = NewWizardHandler(wizardUseCase)
	adminHandler = NewAdminHandler(userStore)
	adminEventsHandler = NewAdminEventsHandler(eventManager, tokenManager)
	categoryHandler = NewCategoryHandler(categoryUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetProfileHandler() *ProfileHandler {
	return profileHandler
}

func GetWizardHandler() *WizardHandler {
	return wizardHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

func GetAdminEventsHandler() *AdminEventsHandler {
	return adminEventsHandler
}

func GetCategoryHandler() *CategoryHandler {
	return categoryHandler
}
