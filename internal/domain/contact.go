package domain

import (
	"context"
	"fmt"
)

// ContactForm holds the values a visitor typed into the quote request form.
// The validate tags mirror the constraints the browser enforces on the form
// inputs (required name, email and message, email input type).
type ContactForm struct {
	Name    string `form:"name" json:"name" validate:"required"`
	Email   string `form:"email" json:"email" validate:"required,email"`
	Phone   string `form:"phone" json:"phone"`
	Service string `form:"service" json:"service"`
	Message string `form:"message" json:"message" validate:"required"`
}

// Validate runs the struct tag checks for a contact form.
func (f *ContactForm) Validate() error {
	return validatorInstance.Struct(f)
}

// Subject returns the subject line used for every delivery mechanism.
func (f ContactForm) Subject() string {
	return "Solicitud de Cotización - " + f.Service
}

// PlainBody returns the plain-text message body used for every delivery mechanism.
func (f ContactForm) PlainBody() string {
	return fmt.Sprintf(`Nuevo mensaje de contacto desde la web:

Nombre: %s
Email: %s
Teléfono: %s
Servicio de interés: %s
Mensaje: %s`, f.Name, f.Email, f.Phone, f.Service, f.Message)
}

// SubmitResult describes what a ContactSubmitter did with a form.
type SubmitResult struct {
	// ComposeURI is set when delivery is handed to the visitor's mail client.
	// The browser is expected to navigate to it.
	ComposeURI string
	// Delivered reports whether the server itself dispatched the message.
	Delivered bool
}

// ContactSubmitter delivers a contact form. Implementations decide how the
// message leaves the site (mail client handoff, transactional e-mail, logs).
type ContactSubmitter interface {
	Submit(ctx context.Context, form ContactForm) (SubmitResult, error)
}
