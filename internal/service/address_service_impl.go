package service

import (
	"context"

	"github.com/Humayun167/green-nest/internal/domain"
	"github.com/Humayun167/green-nest/internal/dto"
	"github.com/Humayun167/green-nest/internal/repository"
	"github.com/Humayun167/green-nest/pkg/errs"
)

type AddressServiceImpl struct {
	addressRepo repository.AddressRepository
}

func CreateAddressService(addressRepo repository.AddressRepository) AddressService {
	return &AddressServiceImpl{addressRepo: addressRepo}
}

func (s *AddressServiceImpl) AddAddress(ctx context.Context, userID string, req dto.AddressPayload) (resp dto.AddressResponse, err error) {
	ownerID, err := parseUserID(userID)
	if err != nil {
		return resp, err
	}

	address := fromAddressPayload(req)
	address.UserID = ownerID

	address.ID, err = s.addressRepo.AddAddress(ctx, address)
	if err != nil {
		return resp, err
	}

	return toAddressResponse(address), nil
}

func (s *AddressServiceImpl) GetAddresses(ctx context.Context, userID string) (resp []dto.AddressResponse, err error) {
	ownerID, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	addresses, err := s.addressRepo.GetAddressesByUserID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	resp = make([]dto.AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		resp = append(resp, toAddressResponse(address))
	}

	return resp, nil
}

func (s *AddressServiceImpl) UpdateAddress(ctx context.Context, userID string, addressID string, req dto.AddressPayload) (resp dto.AddressResponse, err error) {
	existing, err := s.getOwnedAddress(ctx, userID, addressID)
	if err != nil {
		return resp, err
	}

	address := fromAddressPayload(req)
	address.ID = existing.ID
	address.UserID = existing.UserID

	updated, err := s.addressRepo.UpdateAddress(ctx, address)
	if err != nil {
		return resp, err
	}

	return toAddressResponse(updated), nil
}

func (s *AddressServiceImpl) DeleteAddress(ctx context.Context, userID string, addressID string) (err error) {
	existing, err := s.getOwnedAddress(ctx, userID, addressID)
	if err != nil {
		return err
	}

	return s.addressRepo.DeleteAddress(ctx, existing.ID)
}

func (s *AddressServiceImpl) getOwnedAddress(ctx context.Context, userID string, addressID string) (domain.Address, error) {
	ownerID, err := parseUserID(userID)
	if err != nil {
		return domain.Address{}, err
	}

	id, err := parseObjectID(addressID, errs.ErrAddressNotFound)
	if err != nil {
		return domain.Address{}, err
	}

	address, err := s.addressRepo.GetAddressByID(ctx, id)
	if err != nil {
		return domain.Address{}, err
	}

	if address.UserID != ownerID {
		return domain.Address{}, errs.ErrAddressNotOwned
	}

	return address, nil
}

func fromAddressPayload(req dto.AddressPayload) domain.Address {
	return domain.Address{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		Zipcode:   req.Zipcode,
		Country:   req.Country,
		Phone:     req.Phone,
	}
}
