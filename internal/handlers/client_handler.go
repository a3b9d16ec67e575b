package handlers

import (
	"net/http"

	"erp_backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	clientService services.ClientService
}

func NewClientHandler(clientService services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req services.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}

	client, err := h.clientService.CreateClient(&req)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.clientService.GetClient(c.Param("client_id"))
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.clientService.GetAllClients()
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) DeleteClient(c *gin.Context) {
	client, err := h.clientService.DeactivateClient(c.Param("client_id"))
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) CreateAgent(c *gin.Context) {
	var req services.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}

	agent, err := h.clientService.CreateAgent(&req)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, agent)
}

func (h *ClientHandler) ListAgents(c *gin.Context) {
	agents, err := h.clientService.GetAllAgents()
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, agents)
}

func (h *ClientHandler) CreatePriceList(c *gin.Context) {
	var req services.CreatePriceListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}

	priceList, err := h.clientService.CreatePriceList(&req)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, priceList)
}

func (h *ClientHandler) GetPriceList(c *gin.Context) {
	priceList, err := h.clientService.GetPriceList(c.Param("price_list_id"))
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, priceList)
}

func (h *ClientHandler) ListPriceLists(c *gin.Context) {
	priceLists, err := h.clientService.GetAllPriceLists()
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, priceLists)
}

func (h *ClientHandler) DeletePriceList(c *gin.Context) {
	priceList, err := h.clientService.DeactivatePriceList(c.Param("price_list_id"))
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, priceList)
}
