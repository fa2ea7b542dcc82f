package models

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	Snapshot    Snapshot // Latest state pushed by core
	Cursor      int      // Highlighted option in the diet list
	Status      string   // Status bar text
	LoadingDots int      // Animation counter for loading dots
	Width       int      // Terminal width
	Height      int      // Terminal height
	ServiceURL  string   // Base URL of the recipe service
	ProfileName string   // Active profile
}
