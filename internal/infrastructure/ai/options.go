package ai

import "net/http"

// Option ajusta endpoint o cliente HTTP de un adaptador (pruebas, proxies).
type Option func(endpoint *string, client *http.Client)

// WithEndpoint reemplaza la URL base de la API.
func WithEndpoint(url string) Option {
	return func(endpoint *string, _ *http.Client) { *endpoint = url }
}

// WithTransport reemplaza el transporte HTTP.
func WithTransport(rt http.RoundTripper) Option {
	return func(_ *string, client *http.Client) { client.Transport = rt }
}
