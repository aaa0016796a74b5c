package feeds

import "BitMonitor/internal/model"

// places is the fixed merchant list shown on the map.
var places = []model.Place{
	{Name: "Restaurante Satoshi", Lat: -23.55052, Lng: -46.633308, City: "São Paulo", Description: "Aceita Bitcoin e Ethereum para pagamento."},
	{Name: "Café Blockchain", Lat: -22.906847, Lng: -43.172896, City: "Rio de Janeiro", Description: "Café temático com pagamentos em cripto."},
	{Name: "Loja CriptoSul", Lat: -30.034647, Lng: -51.217658, City: "Porto Alegre", Description: "Loja de eletrônicos que aceita várias criptomoedas."},
	{Name: "Bar CriptoNorte", Lat: -3.119027, Lng: -60.021731, City: "Manaus", Description: "Bar que aceita pagamentos em Bitcoin."},
	{Name: "Mercado BitFloripa", Lat: -27.595377, Lng: -48.54805, City: "Florianópolis", Description: "Mercado local que aceita cripto."},
}

// Places returns the merchant list.
func Places() []model.Place {
	out := make([]model.Place, len(places))
	copy(out, places)
	return out
}
