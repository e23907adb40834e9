package notification

import "fmt"

// Plantillas HTML de los correos transaccionales. Son lo bastante simples
// para vivir como fmt.Sprintf; si crecen se migran a html/template.

// WelcomeEmail correo de bienvenida con credenciales para un usuario creado
// por el administrador (flujo de invitación con contraseña generada).
func WelcomeEmail(name, email, password string) EmailMessage {
	html := fmt.Sprintf(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 24px;">
    <div style="max-width: 560px; margin: 0 auto; background: #ffffff; border-radius: 8px; padding: 32px;">
      <h2 style="color: #1a1a2e;">¡Bienvenido, %s!</h2>
      <p>Tu cuenta fue creada correctamente. Estas son tus credenciales de acceso:</p>
      <table style="margin: 16px 0;">
        <tr><td style="padding: 4px 12px 4px 0;"><strong>Email:</strong></td><td>%s</td></tr>
        <tr><td style="padding: 4px 12px 4px 0;"><strong>Contraseña:</strong></td><td>%s</td></tr>
      </table>
      <p>Te recomendamos cambiar la contraseña después de tu primer ingreso.</p>
      <p style="color: #888; font-size: 12px; margin-top: 24px;">Si no esperabas este correo, ignóralo.</p>
    </div>
  </body>
</html>`, name, email, password)

	return EmailMessage{
		To:      email,
		Subject: "Bienvenido - Credenciales de acceso",
		HTML:    html,
	}
}

// PasswordResetEmail correo con la nueva contraseña generada tras una
// solicitud de recuperación.
func PasswordResetEmail(name, email, password string) EmailMessage {
	html := fmt.Sprintf(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 24px;">
    <div style="max-width: 560px; margin: 0 auto; background: #ffffff; border-radius: 8px; padding: 32px;">
      <h2 style="color: #1a1a2e;">Hola, %s</h2>
      <p>Recibimos una solicitud para restablecer tu contraseña. Tu nueva contraseña es:</p>
      <p style="font-size: 18px; letter-spacing: 1px;"><strong>%s</strong></p>
      <p>Te recomendamos cambiarla después de ingresar.</p>
      <p style="color: #888; font-size: 12px; margin-top: 24px;">Si no solicitaste este cambio, contacta al administrador.</p>
    </div>
  </body>
</html>`, name, password)

	return EmailMessage{
		To:      email,
		Subject: "Restablecimiento de contraseña",
		HTML:    html,
	}
}
