package main

// @title           Therapy Chatbot API
// @version         1.0
// @description     Encaminha mensagens do usuário para um provedor de chat completions e devolve a resposta

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:5000
// @BasePath  /
