package shader

// SceneVertexSource is the vertex stage for desk scene geometry. Attribute
// layout matches the mesh package: position, normal, UV.
const SceneVertexSource = `#version 410 core
layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aUV;

out vec3 fragmentPosition;
out vec3 fragmentNormal;
out vec2 fragmentUV;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
uniform vec2 UVscale;

void main()
{
	fragmentPosition = vec3(model * vec4(aPosition, 1.0));
	fragmentNormal = mat3(transpose(inverse(model))) * aNormal;
	fragmentUV = aUV * UVscale;

	gl_Position = projection * view * model * vec4(aPosition, 1.0);
}
`

// SceneFragmentSource is the Phong fragment stage. Objects carry either a
// sampled texture or a flat color, modulated by up to four light sources
// and the bound material.
const SceneFragmentSource = `#version 410 core
#define TOTAL_LIGHTS 4

struct LightSource
{
	vec3 position;
	vec3 direction;
	vec3 diffuseColor;
	vec3 specularColor;
	float focalStrength;
	float specularIntensity;
};

struct Material
{
	vec3 ambientColor;
	float ambientStrength;
	vec3 diffuseColor;
	vec3 specularColor;
	float shininess;
};

in vec3 fragmentPosition;
in vec3 fragmentNormal;
in vec2 fragmentUV;

out vec4 outFragmentColor;

uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform vec3 viewPosition;
uniform vec3 globalAmbientColor;
uniform LightSource lightSources[TOTAL_LIGHTS];
uniform Material material;

vec3 shade(vec3 baseColor)
{
	vec3 normal = normalize(fragmentNormal);
	vec3 viewDir = normalize(viewPosition - fragmentPosition);

	vec3 ambient = globalAmbientColor * baseColor;
	ambient += material.ambientStrength * material.ambientColor * baseColor;

	vec3 lit = ambient;
	for (int i = 0; i < TOTAL_LIGHTS; i++)
	{
		vec3 lightDir = normalize(lightSources[i].position - fragmentPosition);

		float diff = max(dot(normal, lightDir), 0.0);
		vec3 diffuse = diff * lightSources[i].diffuseColor * material.diffuseColor;

		vec3 reflectDir = reflect(-lightDir, normal);
		float spec = pow(max(dot(viewDir, reflectDir), 0.0), material.shininess);
		vec3 specular = lightSources[i].specularIntensity * spec *
			lightSources[i].specularColor * material.specularColor;

		lit += diffuse * baseColor + specular;
	}
	return lit;
}

void main()
{
	vec4 base = bUseTexture ? texture(objectTexture, fragmentUV) : objectColor;

	if (bUseLighting)
	{
		outFragmentColor = vec4(shade(base.rgb), base.a);
	}
	else
	{
		outFragmentColor = base;
	}
}
`
