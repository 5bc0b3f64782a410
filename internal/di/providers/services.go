package providers

import (
	"github.com/samber/do/v2"

	"github.com/yancarpet/storefront/internal/gateway"
	"github.com/yancarpet/storefront/internal/logger"
	"github.com/yancarpet/storefront/internal/service"
	"github.com/yancarpet/storefront/internal/validation"
)

// ProvideValidator provides the request validator with card rules.
func ProvideValidator(i do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// ProvideSessionService provides the session service and binds it into the
// gateway's token ref, closing the auth loop.
func ProvideSessionService(i do.Injector) (*service.SessionService, error) {
	gw := do.MustInvoke[*gateway.Client](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	tokenRef := do.MustInvoke[*TokenRef](i)

	session := service.NewSessionService(gw, storeHandle.Store, log)
	tokenRef.Bind(session)

	return session, nil
}

// ProvideCartService provides the cart ledger.
func ProvideCartService(i do.Injector) (*service.CartService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewCartService(storeHandle.Store, log), nil
}

// ProvideFavoritesService provides the favorites set.
func ProvideFavoritesService(i do.Injector) (*service.FavoritesService, error) {
	gw := do.MustInvoke[*gateway.Client](i)
	session := do.MustInvoke[*service.SessionService](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewFavoritesService(gw, session, storeHandle.Store, log), nil
}

// ProvideCatalogService provides the catalog snapshot.
func ProvideCatalogService(i do.Injector) (*service.CatalogService, error) {
	gw := do.MustInvoke[*gateway.Client](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	indexHandle := do.MustInvoke[*CatalogIndexHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewCatalogService(gw, storeHandle.Store, indexHandle.CatalogIndex, log), nil
}

// ProvideRecommendationService provides the recommendation scorer.
func ProvideRecommendationService(i do.Injector) (*service.RecommendationService, error) {
	catalog := do.MustInvoke[*service.CatalogService](i)
	cart := do.MustInvoke[*service.CartService](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewRecommendationService(catalog, cart, log), nil
}

// ProvideOrderService provides checkout and order history.
func ProvideOrderService(i do.Injector) (*service.OrderService, error) {
	gw := do.MustInvoke[*gateway.Client](i)
	cart := do.MustInvoke[*service.CartService](i)
	session := do.MustInvoke[*service.SessionService](i)
	validator := do.MustInvoke[*validation.Validator](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewOrderService(gw, cart, session, validator, storeHandle.Store, log), nil
}

// ProvideAccountService provides profile management.
func ProvideAccountService(i do.Injector) (*service.AccountService, error) {
	gw := do.MustInvoke[*gateway.Client](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewAccountService(gw, validator, log), nil
}
