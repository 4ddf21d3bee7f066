package auth

import "github.com/HardwareHub/HH-Backend/internal/utils"

// AuthInfo adapts the auth store to the middleware.Authenticator contract.
type AuthInfo struct{}

func (AuthInfo) ResolveToken(bearer string) (utils.Identity, error) {
	claims, err := VerifyToken(bearer)
	if err != nil {
		return utils.Identity{}, err
	}

	user, err := FindUserByID(claims.UserID)
	if err != nil {
		return utils.Identity{}, err
	}
	return identityOf(user), nil
}

func (AuthInfo) ResolveSession(sessionToken string) (utils.Identity, error) {
	user, err := FindSessionUser(sessionToken)
	if err != nil {
		return utils.Identity{}, err
	}
	return identityOf(user), nil
}

func (AuthInfo) RoleForUser(userID string) (string, error) {
	user, err := FindUserByID(userID)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

func identityOf(u *User) utils.Identity {
	return utils.Identity{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
}
