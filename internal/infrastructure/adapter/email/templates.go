package email

import "fmt"

func greeting(name string) string {
	if name == "" {
		return "Hi,"
	}
	return fmt.Sprintf("Hi %s,", name)
}

func verificationEmailHTML(name, verificationURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
  <body style="margin: 0; padding: 0; background-color: #fafafa; font-family: Arial, sans-serif;">
    <table role="presentation" width="100%%" cellpadding="0" cellspacing="0">
      <tr>
        <td align="center" style="padding: 32px 16px;">
          <table role="presentation" width="480" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 12px; border: 1px solid #e4e4e7;">
            <tr>
              <td style="padding: 32px 32px 24px; text-align: center; border-bottom: 1px solid #e4e4e7;">
                <span style="font-size: 20px; font-weight: 700; color: #7c3aed;">SalaPeso</span>
              </td>
            </tr>
            <tr>
              <td style="padding: 32px;">
                <p style="margin: 0 0 16px; font-size: 14px; color: #3f3f46;">%s</p>
                <p style="margin: 0 0 24px; font-size: 14px; color: #3f3f46;">
                  Welcome to SalaPeso! Please click the button below to verify your email address and activate your account.
                </p>
                <div style="text-align: center; margin-bottom: 24px;">
                  <a href="%s" target="_blank" style="display: inline-block; padding: 14px 32px; background-color: #7c3aed; color: #ffffff; text-decoration: none; font-size: 14px; font-weight: 600; border-radius: 8px;">
                    Verify Email
                  </a>
                </div>
                <p style="margin: 0; font-size: 12px; color: #71717a; word-break: break-all;">
                  If the button does not work, copy this link into your browser:<br>%s
                </p>
              </td>
            </tr>
            <tr>
              <td style="padding: 24px 32px; text-align: center; border-top: 1px solid #e4e4e7; background-color: #fafafa;">
                <p style="margin: 0; font-size: 12px; color: #a1a1aa;">
                  If you didn't create an account with SalaPeso, you can safely ignore this email.
                </p>
              </td>
            </tr>
          </table>
        </td>
      </tr>
    </table>
  </body>
</html>`, greeting(name), verificationURL, verificationURL)
}

func passwordResetEmailHTML(name, code string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
  <body style="margin: 0; padding: 0; background-color: #fafafa; font-family: Arial, sans-serif;">
    <table role="presentation" width="100%%" cellpadding="0" cellspacing="0">
      <tr>
        <td align="center" style="padding: 32px 16px;">
          <table role="presentation" width="480" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 12px; border: 1px solid #e4e4e7;">
            <tr>
              <td style="padding: 32px 32px 24px; text-align: center; border-bottom: 1px solid #e4e4e7;">
                <span style="font-size: 20px; font-weight: 700; color: #7c3aed;">SalaPeso</span>
              </td>
            </tr>
            <tr>
              <td style="padding: 32px;">
                <p style="margin: 0 0 16px; font-size: 14px; color: #3f3f46;">%s</p>
                <p style="margin: 0 0 24px; font-size: 14px; color: #3f3f46;">
                  We received a request to reset your password. Enter the code below to continue. The code expires in 15 minutes.
                </p>
                <div style="background-color: #f4f4f5; border-radius: 8px; padding: 24px; text-align: center; margin-bottom: 24px;">
                  <p style="margin: 0 0 8px; font-size: 12px; text-transform: uppercase; letter-spacing: 1px; color: #71717a;">
                    Your reset code
                  </p>
                  <p style="margin: 0; font-size: 32px; font-weight: 700; letter-spacing: 8px; color: #18181b;">%s</p>
                </div>
                <p style="margin: 0; font-size: 12px; color: #71717a;">
                  If you didn't request a password reset, you can safely ignore this email. Your password will not change.
                </p>
              </td>
            </tr>
            <tr>
              <td style="padding: 24px 32px; text-align: center; border-top: 1px solid #e4e4e7; background-color: #fafafa;">
                <p style="margin: 0; font-size: 12px; color: #a1a1aa;">
                  This email was sent by SalaPeso
                </p>
              </td>
            </tr>
          </table>
        </td>
      </tr>
    </table>
  </body>
</html>`, greeting(name), code)
}
