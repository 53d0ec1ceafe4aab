package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/sculpt/internal/validation"
	"github.com/nfrund/sculpt/internal/view/dto/auth"
	"github.com/nfrund/sculpt/web/src/templates/components"
)

const cardClass = "max-w-md mx-auto mt-12 bg-white shadow-lg rounded-xl p-8"

// Login renders the login form. Errors are shown under their fields.
func Login(data auth.LoginData) cmp.Node {
	return g.Div(
		g.Class(cardClass),
		g.H2(g.Class("text-3xl font-bold text-center text-gray-900 mb-6"), cmp.Text("Login")),
		g.Form(
			g.Method("post"),
			g.Action("/login"),
			g.Aria("label", "Login form"),
			components.Input(components.InputProps{
				Name:        validation.FieldEmail,
				Label:       "Email",
				Type:        "email",
				Placeholder: "name@example.com",
				Value:       data.Email,
				Error:       data.Errors[validation.FieldEmail],
			}),
			components.Input(components.InputProps{
				Name:        validation.FieldPassword,
				Label:       "Password",
				Type:        "password",
				Placeholder: "Enter your password",
				Error:       data.Errors[validation.FieldPassword],
			}),
			g.Div(
				g.Class("flex flex-col gap-3 mt-6"),
				components.PrimaryButton("Login", false),
				g.A(g.Href("/register"), g.Class("text-sm text-[#4C8DAE] hover:underline text-center"), cmp.Text("Not a user? Register new account here!")),
				components.LinkButton("/", "Return to Home"),
			),
		),
	)
}

// Register renders the registration form, or the confirmation once a record exists.
func Register(data auth.RegisterData) cmp.Node {
	if data.Record != nil {
		return RegistrationConfirmation(data)
	}
	return g.Div(
		g.Class(cardClass),
		g.H2(g.Class("text-3xl font-bold text-center text-gray-900 mb-6"), cmp.Text("Register")),
		components.Alert(data.Alert),
		registrationForm(data),
	)
}

func registrationForm(data auth.RegisterData) cmp.Node {
	field := func(name, label, typ string) cmp.Node {
		return components.Input(components.InputProps{
			Name:  name,
			Label: label,
			Type:  typ,
			Value: data.Value(name),
		})
	}
	return g.Form(
		g.Method("post"),
		g.Action("/register"),
		g.Aria("label", "Registration form"),
		field(validation.FieldLastName, "Last Name", "text"),
		field(validation.FieldFirstName, "First Name", "text"),
		field(validation.FieldAge, "Age", "number"),
		field(validation.FieldEmail, "Email", "email"),
		field(validation.FieldPassword, "Password", "password"),
		g.Div(
			g.Class("flex items-center mb-6"),
			g.Input(
				g.ID(validation.FieldTerms),
				g.Name(validation.FieldTerms),
				g.Type("checkbox"),
				g.Value("on"),
				g.Class("h-4 w-4 mr-2"),
				cmp.If(data.Value(validation.FieldTerms) != "", g.Checked()),
			),
			g.Label(g.For(validation.FieldTerms), g.Class("text-sm text-gray-700"), cmp.Text("I agree with the terms and conditions")),
		),
		components.PrimaryButton("Register", false),
	)
}

// RegistrationConfirmation shows the submitted record above a fresh form.
func RegistrationConfirmation(data auth.RegisterData) cmp.Node {
	r := data.Record
	row := func(label, value string) cmp.Node {
		return g.Div(
			g.Class("flex justify-between py-1"),
			g.Dt(g.Class("font-medium text-gray-600"), cmp.Text(label+":")),
			g.Dd(g.Class("text-gray-900"), cmp.Text(value)),
		)
	}
	return g.Div(
		g.Class(cardClass),
		g.Div(
			g.ID("registration-result"),
			g.Class("mb-8 rounded-lg border border-green-200 bg-green-50 p-6"),
			g.Role("status"),
			g.H3(g.Class("text-xl font-semibold text-green-800 mb-4"), cmp.Text("Registration Successful!")),
			g.Dl(
				row("Name", r.FirstName+" "+r.LastName),
				row("Age", r.Age),
				row("Email", r.Email),
				row("Terms Accepted", r.TermsLabel()),
				row("Submitted", r.SubmittedAt()),
			),
		),
		registrationForm(auth.RegisterData{}),
	)
}
