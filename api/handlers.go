package api

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(store projectStore, notifyURL string) *routeHandlers {
	return &routeHandlers{
		projectHandler:  newProjectHandler(store, notifyURL),
		categoryHandler: newCategoryHandler(store, notifyURL),
		healthHandler:   newHealthHandler(),
	}
}
