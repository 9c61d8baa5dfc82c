package domain

// SettingsKeyEndpointURL is the fixed slot name for the backend URL in the
// durable settings store.
const SettingsKeyEndpointURL = "endpoint_url"
