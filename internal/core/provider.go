package core

// ProviderName
type ProviderName string

const (
	ProviderOpenAI ProviderName = "openai"
	ProviderGoogle ProviderName = "google"
	// 離線假模型，demo 與測試用
	ProviderMock ProviderName = "mock"
)

func (p ProviderName) String() string { return string(p) }

// CatalogSource 模型目錄來源
type CatalogSource string

const (
	CatalogSourceProviders CatalogSource = "providers"
	CatalogSourceHTTP      CatalogSource = "http"
	CatalogSourceStatic    CatalogSource = "static"
)
