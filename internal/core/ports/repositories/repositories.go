package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Each store backend (sqlite, pgsql) builds one.
type RepositoryProvider struct {
	ProductRepo  ProductRepositoryFacade
	StockRepo    StockRepositoryFacade
	SalesRepo    SalesRepositoryFacade
	CheckoutRepo CheckoutCommitter
}
