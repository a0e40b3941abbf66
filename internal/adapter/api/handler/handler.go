package handler

import (
	"nexar/internal/usecase"
)

var (
	authHandler     *AuthHandler
	profileHandler  *ProfileHandler
	listingHandler  *ListingHandler
	favoriteHandler *FavoriteHandler
	messageHandler  *MessageHandler
	reviewHandler   *ReviewHandler
	repairHandler   *RepairHandler
	adminHandler    *AdminHandler
	citiesHandler   *CitiesHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	profileUseCase *usecase.ProfileUseCase,
	listingUseCase *usecase.ListingUseCase,
	favoriteUseCase *usecase.FavoriteUseCase,
	messageUseCase *usecase.MessageUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	repairUseCase *usecase.RepairUseCase,
	adminUseCase *usecase.AdminUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	profileHandler = NewProfileHandler(profileUseCase, reviewUseCase)
	listingHandler = NewListingHandler(listingUseCase)
	favoriteHandler = NewFavoriteHandler(favoriteUseCase)
	messageHandler = NewMessageHandler(messageUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	repairHandler = NewRepairHandler(repairUseCase, profileUseCase)
	adminHandler = NewAdminHandler(adminUseCase)
	citiesHandler = NewCitiesHandler()
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetProfileHandler() *ProfileHandler {
	return profileHandler
}

func GetListingHandler() *ListingHandler {
	return listingHandler
}

func GetFavoriteHandler() *FavoriteHandler {
	return favoriteHandler
}

func GetMessageHandler() *MessageHandler {
	return messageHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetRepairHandler() *RepairHandler {
	return repairHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

func GetCitiesHandler() *CitiesHandler {
	return citiesHandler
}
