package config

// EnvPrefix is the envconfig prefix shared by every StyleLane variable.
const EnvPrefix = "STYLELANE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Collection suffixes appended to the configured table prefix.
const (
	TableUsers     = "users"
	TableStores    = "stores"
	TableProducts  = "products"
	TableInventory = "inventory"
	TableSales     = "sales"
	TableRestocks  = "restock-requests"
	TableShipments = "shipments"
)
