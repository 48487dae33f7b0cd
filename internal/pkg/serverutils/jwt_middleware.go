package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JwtMiddleware authenticates requests via a Bearer token and stores the
// user id in locals.
func JwtMiddleware(ctx *fiber.Ctx) error {
	claims, ok := parseBearer(ctx)
	if !ok {
		return nil
	}

	ctx.Locals("user_id", claims["user_id"])
	return ctx.Next()
}

// AdminMiddleware additionally requires the "admin" role claim. Used for the
// scenario editor endpoints.
func AdminMiddleware(ctx *fiber.Ctx) error {
	claims, ok := parseBearer(ctx)
	if !ok {
		return nil
	}

	if role, _ := claims["role"].(string); role != "admin" {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Admin access required"})
	}

	ctx.Locals("user_id", claims["user_id"])
	return ctx.Next()
}

// parseBearer validates the Authorization header. On failure it writes the
// 401 response itself and reports ok=false.
func parseBearer(ctx *fiber.Ctx) (jwt.MapClaims, bool) {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		_ = ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
		return nil, false
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		_ = ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		_ = ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
		return nil, false
	}

	return claims, true
}
