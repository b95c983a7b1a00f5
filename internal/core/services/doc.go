// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// All model inference and ranking happens behind driven ports;
// services only sequence the calls and enforce domain rules.
package services
